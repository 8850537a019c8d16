package service

import (
	"testing"
	"time"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"

	"gorm.io/gorm"
)

func newDashboardService(db *gorm.DB) *DashboardService {
	return NewDashboardService(
		repository.NewProgressRepository(db),
		repository.NewQuizRepository(db),
		repository.NewBadgeRepository(db),
	)
}

func TestLessonCompletionsJoinsTitlesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	lessons := []model.Lesson{
		{CourseID: 1, Title: "Preparing Your Home"},
		{CourseID: 1, Title: "The First 48 Hours"},
	}
	if err := db.Create(&lessons).Error; err != nil {
		t.Fatalf("seed lessons: %v", err)
	}

	now := time.Now()
	completions := []model.LessonProgress{
		{UserID: 7, LessonID: lessons[0].LessonID, StepID: 1, CompletedAt: now.Add(-time.Hour)},
		{UserID: 7, LessonID: lessons[1].LessonID, StepID: 1, CompletedAt: now},
		{UserID: 8, LessonID: lessons[0].LessonID, StepID: 1, CompletedAt: now},
	}
	if err := db.Create(&completions).Error; err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	rows, err := svc.LessonCompletions(7)
	if err != nil {
		t.Fatalf("LessonCompletions: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 for user 7 only", len(rows))
	}
	if rows[0].LessonTitle != "The First 48 Hours" {
		t.Errorf("first row = %q, want the newest completion", rows[0].LessonTitle)
	}
}

func TestQuizAttemptsJoinsTitlesNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	quiz := model.Quiz{Title: "Pet Care Basics"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	now := time.Now()
	attempts := []model.QuizAttempt{
		{UserID: 7, QuizID: quiz.QuizID, Score: 50, Passed: true, AttemptedAt: now.Add(-time.Hour)},
		{UserID: 7, QuizID: quiz.QuizID, Score: 100, Passed: true, AttemptedAt: now},
	}
	if err := db.Create(&attempts).Error; err != nil {
		t.Fatalf("seed attempts: %v", err)
	}

	rows, err := svc.QuizAttempts(7)
	if err != nil {
		t.Fatalf("QuizAttempts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Score != 100 {
		t.Errorf("first row score = %d, want the newest attempt", rows[0].Score)
	}
	if rows[0].QuizTitle != "Pet Care Basics" {
		t.Errorf("quiz_title = %q", rows[0].QuizTitle)
	}
}

func TestEarnedBadgesJoinsBadgeDetails(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	badge := model.Badge{QuizID: 1, BadgeName: "Adoption Ready", BadgeImage: "/images/badges/ready.png", MinScore: 50}
	if err := db.Create(&badge).Error; err != nil {
		t.Fatalf("seed badge: %v", err)
	}
	grant := model.UserBadge{UserID: 7, BadgeID: badge.BadgeID}
	if err := db.Create(&grant).Error; err != nil {
		t.Fatalf("seed grant: %v", err)
	}

	rows, err := svc.EarnedBadges(7)
	if err != nil {
		t.Fatalf("EarnedBadges: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].BadgeName != "Adoption Ready" || rows[0].BadgeImage != "/images/badges/ready.png" {
		t.Errorf("row = %+v", rows[0])
	}

	empty, err := svc.EarnedBadges(8)
	if err != nil {
		t.Fatalf("EarnedBadges for user without grants: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("rows = %d, want 0", len(empty))
	}
}
