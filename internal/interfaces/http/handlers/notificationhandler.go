package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/application/notification/usecases"
	"github.com/edulane/edulane/internal/domain/notification"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/utils"
)

type NotificationHandler struct {
	listUC     *usecases.ListNotificationsUseCase
	markReadUC *usecases.MarkReadUseCase
	logger     logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkReadUseCase,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:     listUC,
		markReadUC: markReadUC,
		logger:     logger.NewLogger(),
	}
}

type NotificationResponse struct {
	ID        uint      `json:"id"`
	UUID      string    `json:"uuid"`
	EventType string    `json:"event_type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		UUID:      n.UUID(),
		EventType: string(n.EventType()),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.Read(),
		CreatedAt: n.CreatedAt(),
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.listUC.Execute(c.Request.Context(), callerID, unreadOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}

	utils.OKResponse(c, responses)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	notificationID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid notification ID")
		return
	}

	if err := h.markReadUC.Execute(c.Request.Context(), callerID, notificationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"marked_read": true})
}
