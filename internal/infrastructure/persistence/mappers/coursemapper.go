package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	accessvo "github.com/edulane/edulane/internal/domain/access/valueobjects"
	"github.com/edulane/edulane/internal/domain/course"
	vo "github.com/edulane/edulane/internal/domain/course/valueobjects"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/mapper"
)

type CourseMapper interface {
	ToEntity(model *models.CourseModel) (*course.Course, error)
	ToModel(entity *course.Course) (*models.CourseModel, error)
	ToEntities(models []*models.CourseModel) ([]*course.Course, error)
}

type CourseMapperImpl struct{}

func NewCourseMapper() CourseMapper {
	return &CourseMapperImpl{}
}

func (m *CourseMapperImpl) ToEntity(model *models.CourseModel) (*course.Course, error) {
	if model == nil {
		return nil, nil
	}

	prices := make(map[accessvo.PeriodToken]int64)
	if len(model.Prices) > 0 {
		var raw map[string]int64
		if err := json.Unmarshal(model.Prices, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal course prices: %w", err)
		}
		for token, cents := range raw {
			prices[accessvo.PeriodToken(token)] = cents
		}
	}

	entity, err := course.ReconstructCourse(
		model.ID,
		model.OwnerID,
		model.Title,
		model.Description,
		model.DescriptionHTML,
		model.Price,
		vo.SubscriptionType(model.SubscriptionType),
		model.TrialPeriodDays,
		model.TrialLessonID,
		prices,
		model.Visible,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct course entity: %w", err)
	}

	return entity, nil
}

func (m *CourseMapperImpl) ToModel(entity *course.Course) (*models.CourseModel, error) {
	if entity == nil {
		return nil, nil
	}

	raw := make(map[string]int64, len(entity.Prices()))
	for token, cents := range entity.Prices() {
		raw[string(token)] = cents
	}
	pricesJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal course prices: %w", err)
	}

	return &models.CourseModel{
		ID:               entity.ID(),
		OwnerID:          entity.OwnerID(),
		Title:            entity.Title(),
		Description:      entity.Description(),
		DescriptionHTML:  entity.DescriptionHTML(),
		Price:            entity.Price(),
		SubscriptionType: string(entity.SubscriptionType()),
		TrialPeriodDays:  entity.TrialPeriodDays(),
		TrialLessonID:    entity.TrialLessonID(),
		Prices:           datatypes.JSON(pricesJSON),
		Visible:          entity.Visible(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *CourseMapperImpl) ToEntities(modelList []*models.CourseModel) ([]*course.Course, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.CourseModel) uint { return model.ID })
}
