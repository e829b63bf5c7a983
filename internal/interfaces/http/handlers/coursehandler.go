package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulane/edulane/internal/application/course/usecases"
	vo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	coursevo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/shared/logger"
	"github.com/edulane/edulane/internal/shared/utils"
)

type CourseHandler struct {
	createCourseUC *usecases.CreateCourseUseCase
	updateCourseUC *usecases.UpdateCourseUseCase
	setPricingUC   *usecases.SetPricingUseCase
	addLessonUC    *usecases.AddLessonUseCase
	getCourseUC    *usecases.GetCourseUseCase
	getLessonUC    *usecases.GetLessonUseCase
	listCoursesUC  *usecases.ListCoursesUseCase
	logger         logger.Interface
}

func NewCourseHandler(
	createCourseUC *usecases.CreateCourseUseCase,
	updateCourseUC *usecases.UpdateCourseUseCase,
	setPricingUC *usecases.SetPricingUseCase,
	addLessonUC *usecases.AddLessonUseCase,
	getCourseUC *usecases.GetCourseUseCase,
	getLessonUC *usecases.GetLessonUseCase,
	listCoursesUC *usecases.ListCoursesUseCase,
) *CourseHandler {
	return &CourseHandler{
		createCourseUC: createCourseUC,
		updateCourseUC: updateCourseUC,
		setPricingUC:   setPricingUC,
		addLessonUC:    addLessonUC,
		getCourseUC:    getCourseUC,
		getLessonUC:    getLessonUC,
		listCoursesUC:  listCoursesUC,
		logger:         logger.NewLogger(),
	}
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

type UpdateCourseRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Description      string  `json:"description"`
	PriceCents       int64   `json:"price_cents" binding:"min=0"`
	SubscriptionType *string `json:"subscription_type" binding:"omitempty,oneof=free trial paid"`
	TrialPeriodDays  *uint   `json:"trial_period_days"`
	Visible          *bool   `json:"visible"`
}

type SetPricingRequest struct {
	// Prices maps period tokens to prices in cents; the submitted map
	// replaces the course's whole price table.
	Prices map[string]int64 `json:"prices" binding:"required"`
}

type AddLessonRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" binding:"omitempty,url"`
	Position int    `json:"position" binding:"min=0"`
	Trial    bool   `json:"trial"`
}

type CourseResponse struct {
	ID               uint             `json:"id"`
	OwnerID          uint             `json:"owner_id"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	DescriptionHTML  string           `json:"description_html"`
	PriceCents       int64            `json:"price_cents"`
	SubscriptionType string           `json:"subscription_type"`
	TrialPeriodDays  *uint            `json:"trial_period_days,omitempty"`
	TrialLessonID    *uint            `json:"trial_lesson_id,omitempty"`
	Prices           map[string]int64 `json:"prices,omitempty"`
	Visible          bool             `json:"visible"`
	CreatedAt        time.Time        `json:"created_at"`
}

type LessonResponse struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	Position int    `json:"position"`
}

// LessonOutlineResponse is the listing shape: titles and order only, no
// gated content.
type LessonOutlineResponse struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
	Trial    bool   `json:"trial"`
}

func toCourseResponse(c *course.Course) CourseResponse {
	var prices map[string]int64
	if len(c.Prices()) > 0 {
		prices = make(map[string]int64, len(c.Prices()))
		for token, cents := range c.Prices() {
			prices[token.String()] = cents
		}
	}

	return CourseResponse{
		ID:               c.ID(),
		OwnerID:          c.OwnerID(),
		Title:            c.Title(),
		Description:      c.Description(),
		DescriptionHTML:  c.DescriptionHTML(),
		PriceCents:       c.Price(),
		SubscriptionType: string(c.SubscriptionType()),
		TrialPeriodDays:  c.TrialPeriodDays(),
		TrialLessonID:    c.TrialLessonID(),
		Prices:           prices,
		Visible:          c.Visible(),
		CreatedAt:        c.CreatedAt(),
	}
}

func toLessonResponse(l *course.Lesson) LessonResponse {
	return LessonResponse{
		ID:       l.ID(),
		CourseID: l.CourseID(),
		Title:    l.Title(),
		Content:  l.Content(),
		VideoURL: l.VideoURL(),
		Position: l.Position(),
	}
}

// Create handles POST /courses.
func (h *CourseHandler) Create(c *gin.Context) {
	callerID, ok := utils.CallerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	crs, err := h.createCourseUC.Execute(c.Request.Context(), usecases.CreateCourseCommand{
		CallerID:    callerID,
		CallerRole:  utils.CallerRole(c),
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCourseResponse(crs))
}

// Update handles PUT /courses/:id.
func (h *CourseHandler) Update(c *gin.Context) {
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

	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	var subType *coursevo.SubscriptionType
	if req.SubscriptionType != nil {
		parsed, err := coursevo.ParseSubscriptionType(*req.SubscriptionType)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		subType = &parsed
	}

	crs, err := h.updateCourseUC.Execute(c.Request.Context(), usecases.UpdateCourseCommand{
		CallerID:         callerID,
		CallerRole:       utils.CallerRole(c),
		CourseID:         courseID,
		Title:            req.Title,
		Description:      req.Description,
		PriceCents:       req.PriceCents,
		SubscriptionType: subType,
		TrialPeriodDays:  req.TrialPeriodDays,
		Visible:          req.Visible,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toCourseResponse(crs))
}

// SetPricing handles PUT /courses/:id/pricing.
func (h *CourseHandler) SetPricing(c *gin.Context) {
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

	var req SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	prices := make(map[vo.PeriodToken]int64, len(req.Prices))
	for raw, cents := range req.Prices {
		token, err := vo.ParsePeriodToken(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		prices[token] = cents
	}

	crs, err := h.setPricingUC.Execute(c.Request.Context(), usecases.SetPricingCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		CourseID:   courseID,
		Prices:     prices,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toCourseResponse(crs))
}

// AddLesson handles POST /courses/:id/lessons.
func (h *CourseHandler) AddLesson(c *gin.Context) {
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

	var req AddLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	lesson, err := h.addLessonUC.Execute(c.Request.Context(), usecases.AddLessonCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		CourseID:   courseID,
		Title:      req.Title,
		Content:    req.Content,
		VideoURL:   req.VideoURL,
		Position:   req.Position,
		Trial:      req.Trial,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toLessonResponse(lesson))
}

// Get handles GET /courses/:id. The lesson outline omits content; lesson
// bodies are fetched one at a time through the access-gated endpoint.
func (h *CourseHandler) Get(c *gin.Context) {
	courseID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid course ID")
		return
	}

	callerID, _ := utils.CallerID(c)

	detail, err := h.getCourseUC.Execute(c.Request.Context(), usecases.GetCourseCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		CourseID:   courseID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	outline := make([]LessonOutlineResponse, 0, len(detail.Lessons))
	for _, l := range detail.Lessons {
		outline = append(outline, LessonOutlineResponse{
			ID:       l.ID(),
			Title:    l.Title(),
			Position: l.Position(),
			Trial:    detail.Course.IsTrialLesson(l.ID()),
		})
	}

	utils.OKResponse(c, gin.H{
		"course":  toCourseResponse(detail.Course),
		"lessons": outline,
	})
}

// GetLesson handles GET /lessons/:id.
func (h *CourseHandler) GetLesson(c *gin.Context) {
	lessonID, ok := utils.ParseUintParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	callerID, _ := utils.CallerID(c)

	lesson, err := h.getLessonUC.Execute(c.Request.Context(), usecases.GetLessonCommand{
		CallerID:   callerID,
		CallerRole: utils.CallerRole(c),
		LessonID:   lessonID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toLessonResponse(lesson))
}

// List handles GET /courses.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.listCoursesUC.Execute(c.Request.Context(), utils.CallerRole(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CourseResponse, 0, len(courses))
	for _, crs := range courses {
		responses = append(responses, toCourseResponse(crs))
	}

	utils.OKResponse(c, responses)
}
