package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/application/access/usecases"
	"github.com/edulane/edulane/internal/domain/access"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/utils"
)

type AccessHandler struct {
	requestAccessUC      *usecases.RequestAccessUseCase
	decideAccessUC       *usecases.DecideAccessRequestUseCase
	assignAccessUC       *usecases.AssignAccessUseCase
	revokeAccessUC       *usecases.RevokeAccessUseCase
	extendSubscriptionUC *usecases.ExtendSubscriptionUseCase
	checkAccessUC        *usecases.CheckAccessUseCase
	listStudentAccessUC  *usecases.ListStudentAccessUseCase
	listCourseAccessUC   *usecases.ListCourseAccessUseCase
	logger               logger.Interface
}

func NewAccessHandler(
	requestAccessUC *usecases.RequestAccessUseCase,
	decideAccessUC *usecases.DecideAccessRequestUseCase,
	assignAccessUC *usecases.AssignAccessUseCase,
	revokeAccessUC *usecases.RevokeAccessUseCase,
	extendSubscriptionUC *usecases.ExtendSubscriptionUseCase,
	checkAccessUC *usecases.CheckAccessUseCase,
	listStudentAccessUC *usecases.ListStudentAccessUseCase,
	listCourseAccessUC *usecases.ListCourseAccessUseCase,
) *AccessHandler {
	return &AccessHandler{
		requestAccessUC:      requestAccessUC,
		decideAccessUC:       decideAccessUC,
		assignAccessUC:       assignAccessUC,
		revokeAccessUC:       revokeAccessUC,
		extendSubscriptionUC: extendSubscriptionUC,
		checkAccessUC:        checkAccessUC,
		listStudentAccessUC:  listStudentAccessUC,
		listCourseAccessUC:   listCourseAccessUC,
		logger:               logger.NewLogger(),
	}
}

type DecideAccessRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Approve   *bool  `json:"approve" binding:"required"`
	Period    string `json:"period" binding:"omitempty,oneof=30_days 3_months 6_months 1_year"`
}

type AssignAccessRequest struct {
	StudentID uint       `json:"student_id" binding:"required"`
	Start     *time.Time `json:"access_start"`
	End       *time.Time `json:"access_end"`
}

type ExtendSubscriptionRequest struct {
	Period string `json:"period" binding:"required,oneof=30_days 3_months 6_months 1_year"`
}

type AccessRecordResponse struct {
	ID          uint       `json:"id"`
	StudentID   uint       `json:"student_id"`
	CourseID    uint       `json:"course_id"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ApprovedBy  *uint      `json:"approved_by,omitempty"`
	AccessStart *time.Time `json:"access_start,omitempty"`
	AccessEnd   *time.Time `json:"access_end,omitempty"`
}

func toAccessRecordResponse(r *access.AccessRecord) AccessRecordResponse {
	return AccessRecordResponse{
		ID:          r.ID(),
		StudentID:   r.StudentID(),
		CourseID:    r.CourseID(),
		Status:      string(r.Status()),
		RequestedAt: r.RequestedAt(),
		ApprovedAt:  r.ApprovedAt(),
		ApprovedBy:  r.ApprovedBy(),
		AccessStart: r.AccessStart(),
		AccessEnd:   r.AccessEnd(),
	}
}

func toAccessRecordResponses(records []*access.AccessRecord) []AccessRecordResponse {
	responses := make([]AccessRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toAccessRecordResponse(r))
	}
	return responses
}

func parseOptionalPeriod(raw string) (*vo.PeriodToken, error) {
	if raw == "" {
		return nil, nil
	}
	token, err := vo.ParsePeriodToken(raw)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Request handles POST /courses/:id/access-requests.
func (h *AccessHandler) Request(c *gin.Context) {
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

	record, err := h.requestAccessUC.Execute(c.Request.Context(), usecases.RequestAccessCommand{
		StudentID: callerID,
		CourseID:  courseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAccessRecordResponse(record))
}

// Decide handles POST /courses/:id/access-requests/decide.
func (h *AccessHandler) Decide(c *gin.Context) {
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

	var req DecideAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	period, err := parseOptionalPeriod(req.Period)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.decideAccessUC.Execute(c.Request.Context(), usecases.DecideAccessRequestCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		StudentID:  req.StudentID,
		CourseID:   courseID,
		Approve:    *req.Approve,
		Period:     period,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toAccessRecordResponse(record))
}

// Assign handles POST /courses/:id/access.
func (h *AccessHandler) Assign(c *gin.Context) {
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

	var req AssignAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	record, err := h.assignAccessUC.Execute(c.Request.Context(), usecases.AssignAccessCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		StudentID:  req.StudentID,
		CourseID:   courseID,
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toAccessRecordResponse(record))
}

// Revoke handles DELETE /courses/:id/access/:studentId.
func (h *AccessHandler) Revoke(c *gin.Context) {
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
	studentID, ok := utils.ParseUintParam(c, "studentId")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid student ID")
		return
	}

	err := h.revokeAccessUC.Execute(c.Request.Context(), usecases.RevokeAccessCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		StudentID:  studentID,
		CourseID:   courseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"revoked": true})
}

// Extend handles POST /courses/:id/subscription/extend.
func (h *AccessHandler) Extend(c *gin.Context) {
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

	var req ExtendSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	token, err := vo.ParsePeriodToken(req.Period)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.extendSubscriptionUC.Execute(c.Request.Context(), usecases.ExtendSubscriptionCommand{
		StudentID: callerID,
		CourseID:  courseID,
		Period:    token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"record":      toAccessRecordResponse(result.Record),
		"price_cents": result.PriceCents,
	})
}

// Check handles GET /courses/:id/access/check. It runs behind OptionalAuth
// so anonymous users get a decision too (trial lessons are open to them).
func (h *AccessHandler) Check(c *gin.Context) {
	courseID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid course ID")
		return
	}

	var lessonID uint
	if raw := c.Query("lesson_id"); raw != "" {
		id, ok := utils.ParseUintQuery(c, "lesson_id")
		if !ok {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid lesson ID")
			return
		}
		lessonID = id
	}

	callerID, _ := utils.CallerID(c)

	decision, err := h.checkAccessUC.Execute(c.Request.Context(), usecases.CheckAccessCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		CourseID:   courseID,
		LessonID:   lessonID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, decision)
}

// ListMine handles GET /me/access.
func (h *AccessHandler) ListMine(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	records, err := h.listStudentAccessUC.Execute(c.Request.Context(), callerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toAccessRecordResponses(records))
}

// ListForCourse handles GET /courses/:id/access.
func (h *AccessHandler) ListForCourse(c *gin.Context) {
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

	records, err := h.listCourseAccessUC.Execute(c.Request.Context(), usecases.ListCourseAccessCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		CourseID:   courseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toAccessRecordResponses(records))
}
