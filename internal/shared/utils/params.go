package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/shared/constants"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// ParseUintQuery parses a positive integer query parameter.
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// CallerID returns the authenticated user ID set by the auth middleware.
func CallerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// CallerRole returns the authenticated user role set by the auth middleware.
func CallerRole(c *gin.Context) string {
	v, exists := c.Get(constants.ContextKeyUserRole)
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
