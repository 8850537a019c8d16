package service

import (
	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
)

// DashboardService backs the per-user progress views: completed lesson steps,
// quiz attempts and earned badges, each newest first.
type DashboardService struct {
	ProgressRepo *repository.ProgressRepository
	QuizRepo     *repository.QuizRepository
	BadgeRepo    *repository.BadgeRepository
}

func NewDashboardService(progressRepo *repository.ProgressRepository, quizRepo *repository.QuizRepository, badgeRepo *repository.BadgeRepository) *DashboardService {
	return &DashboardService{
		ProgressRepo: progressRepo,
		QuizRepo:     quizRepo,
		BadgeRepo:    badgeRepo,
	}
}

func (s *DashboardService) LessonCompletions(userID uint) ([]model.LessonCompletionRow, error) {
	return s.ProgressRepo.CompletionsByUser(userID)
}

func (s *DashboardService) QuizAttempts(userID uint) ([]model.QuizAttemptRow, error) {
	return s.QuizRepo.AttemptsByUser(userID)
}

func (s *DashboardService) EarnedBadges(userID uint) ([]model.EarnedBadgeRow, error) {
	return s.BadgeRepo.BadgesByUser(userID)
}
