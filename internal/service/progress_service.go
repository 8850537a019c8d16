package service

import (
	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// MarkStepRequest marks one lesson step complete. UserID is optional and
// defaults to the guest user (no auth system backs it).
type MarkStepRequest struct {
	UserID   *uint `json:"user_id"`
	LessonID uint  `json:"lesson_id"`
	StepID   uint  `json:"step_id"`
}

// MarkStepComplete is idempotent per (user, lesson, step): the first call
// records the completion time, repeats leave it unchanged.
func (s *ProgressService) MarkStepComplete(req MarkStepRequest) error {
	userID := util.DefaultGuestUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	return s.ProgressRepo.MarkComplete(&model.LessonProgress{
		UserID:   userID,
		LessonID: req.LessonID,
		StepID:   req.StepID,
	})
}
