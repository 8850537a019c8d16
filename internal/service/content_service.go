package service

import (
	"context"
	"encoding/json"
	"time"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	courseCatalogCacheKey = "pawlearn:courses"
	courseCatalogCacheTTL = 5 * time.Minute
)

// ContentService serves the read-only course -> lesson -> step hierarchy.
// The API has no write endpoints for this content, so the Redis-cached
// catalog cannot go stale from anything this server does.
type ContentService struct {
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
	Redis      *redis.Client // nil disables caching
}

func NewContentService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository, rdb *redis.Client) *ContentService {
	return &ContentService{
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
		Redis:      rdb,
	}
}

// ListCourses returns every course with its lesson count.
func (s *ContentService) ListCourses(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, courseCatalogCacheKey).Bytes()
		if err == nil {
			var courses []model.Course
			if err := json.Unmarshal(cached, &courses); err == nil {
				return courses, nil
			}
		}
	}

	courses, err := s.CourseRepo.FindAll()
	if err != nil {
		return nil, err
	}

	counts, err := s.CourseRepo.LessonCounts()
	if err != nil {
		return nil, err
	}
	for i := range courses {
		courses[i].LessonsCount = counts[courses[i].CourseID]
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, courseCatalogCacheKey, payload, courseCatalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("course catalog cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

func (s *ContentService) ListLessons(courseID uint) ([]model.Lesson, error) {
	return s.LessonRepo.FindByCourse(courseID)
}

func (s *ContentService) GetLesson(lessonID uint) (*model.Lesson, error) {
	return s.LessonRepo.FindByID(lessonID)
}

func (s *ContentService) ListSteps(lessonID uint) ([]model.LessonStep, error) {
	return s.LessonRepo.StepsByLesson(lessonID)
}
