package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/application/progress/usecases"
	"github.com/edulane/edulane/internal/domain/progress"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/utils"
)

type ProgressHandler struct {
	markCompletionUC    *usecases.MarkCompletionUseCase
	getCourseProgressUC *usecases.GetCourseProgressUseCase
	logger              logger.Interface
}

func NewProgressHandler(
	markCompletionUC *usecases.MarkCompletionUseCase,
	getCourseProgressUC *usecases.GetCourseProgressUseCase,
) *ProgressHandler {
	return &ProgressHandler{
		markCompletionUC:    markCompletionUC,
		getCourseProgressUC: getCourseProgressUC,
		logger:              logger.NewLogger(),
	}
}

type MarkProgressRequest struct {
	Completed    bool `json:"completed"`
	LastPosition int  `json:"last_position" binding:"min=0"`
}

type ProgressRecordResponse struct {
	LessonID     uint      `json:"lesson_id"`
	CourseID     uint      `json:"course_id"`
	Completed    bool      `json:"completed"`
	LastPosition int       `json:"last_position"`
	WatchedAt    time.Time `json:"watched_at"`
}

func toProgressRecordResponse(r *progress.Record) ProgressRecordResponse {
	return ProgressRecordResponse{
		LessonID:     r.LessonID(),
		CourseID:     r.CourseID(),
		Completed:    r.Completed(),
		LastPosition: r.LastPosition(),
		WatchedAt:    r.WatchedAt(),
	}
}

// Mark handles POST /lessons/:id/progress.
func (h *ProgressHandler) Mark(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	lessonID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	var req MarkProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.markCompletionUC.Execute(c.Request.Context(), usecases.MarkCompletionCommand{
		StudentID:    callerID,
		StudentRole:  utils.CallerRole(c),
		LessonID:     lessonID,
		Completed:    req.Completed,
		LastPosition: req.LastPosition,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"record":         toProgressRecordResponse(result.Record),
		"points_awarded": result.PointsAwarded,
	})
}

// CourseProgress handles GET /courses/:id/progress.
func (h *ProgressHandler) CourseProgress(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	courseID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid course ID")
		return
	}

	summary, err := h.getCourseProgressUC.Execute(c.Request.Context(), usecases.GetCourseProgressCommand{
		StudentID: callerID,
		CourseID:  courseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	records := make([]ProgressRecordResponse, 0, len(summary.Records))
	for _, r := range summary.Records {
		records = append(records, toProgressRecordResponse(r))
	}

	utils.OKResponse(c, gin.H{
		"records":           records,
		"total_lessons":     summary.TotalLessons,
		"completed_lessons": summary.CompletedLessons,
	})
}
