package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edulane/edulane/internal/domain/course"
	"github.com/edulane/edulane/internal/infrastructure/persistence/mappers"
	"github.com/edulane/edulane/internal/infrastructure/persistence/models"
	"github.com/edulane/edulane/internal/shared/logger"
)

const (
	courseKeyPrefix = "course:id:"
	courseCacheTTL  = 5 * time.Minute
)

// CachedCourseRepository decorates a course repository with a read-through
// Redis cache on GetByID. The access check reads course configuration on
// every entitlement decision; this keeps that hot path off the database.
// Cache failures degrade to the underlying repository, never to an error.
type CachedCourseRepository struct {
	inner  course.Repository
	client *redis.Client
	mapper mappers.CourseMapper
	logger logger.Interface
}

func NewCachedCourseRepository(inner course.Repository, client *redis.Client, logger logger.Interface) course.Repository {
	return &CachedCourseRepository{
		inner:  inner,
		client: client,
		mapper: mappers.NewCourseMapper(),
		logger: logger,
	}
}

func (r *CachedCourseRepository) GetByID(ctx context.Context, id uint) (*course.Course, error) {
	key := fmt.Sprintf("%s%d", courseKeyPrefix, id)

	data, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var model models.CourseModel
		if err := json.Unmarshal(data, &model); err == nil {
			return r.mapper.ToEntity(&model)
		}
		r.logger.Warnw("corrupt course cache entry, falling through", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warnw("course cache read failed", "error", err, "key", key)
	}

	crs, err := r.inner.GetByID(ctx, id)
	if err != nil || crs == nil {
		return crs, err
	}

	model, mapErr := r.mapper.ToModel(crs)
	if mapErr == nil {
		if data, err := json.Marshal(model); err == nil {
			if err := r.client.Set(ctx, key, data, courseCacheTTL).Err(); err != nil {
				r.logger.Warnw("course cache write failed", "error", err, "key", key)
			}
		}
	}

	return crs, nil
}

func (r *CachedCourseRepository) Create(ctx context.Context, crs *course.Course) error {
	return r.inner.Create(ctx, crs)
}

func (r *CachedCourseRepository) Update(ctx context.Context, crs *course.Course) error {
	if err := r.inner.Update(ctx, crs); err != nil {
		return err
	}
	r.invalidate(ctx, crs.ID())
	return nil
}

func (r *CachedCourseRepository) List(ctx context.Context, visibleOnly bool) ([]*course.Course, error) {
	return r.inner.List(ctx, visibleOnly)
}

func (r *CachedCourseRepository) CreateLesson(ctx context.Context, lesson *course.Lesson) error {
	return r.inner.CreateLesson(ctx, lesson)
}

func (r *CachedCourseRepository) GetLessonByID(ctx context.Context, id uint) (*course.Lesson, error) {
	return r.inner.GetLessonByID(ctx, id)
}

func (r *CachedCourseRepository) ListLessonsByCourse(ctx context.Context, courseID uint) ([]*course.Lesson, error) {
	return r.inner.ListLessonsByCourse(ctx, courseID)
}

func (r *CachedCourseRepository) invalidate(ctx context.Context, id uint) {
	key := fmt.Sprintf("%s%d", courseKeyPrefix, id)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Warnw("course cache invalidation failed", "error", err, "key", key)
	}
}
