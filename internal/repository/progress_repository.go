package repository

import (
	"pawlearn_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// MarkComplete inserts the completion mark; a conflict on the
// (user_id, lesson_id, step_id) key is a no-op so the first completion
// timestamp survives repeat calls.
func (r *ProgressRepository) MarkComplete(progress *model.LessonProgress) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(progress).Error
}

func (r *ProgressRepository) CompletionsByUser(userID uint) ([]model.LessonCompletionRow, error) {
	rows := []model.LessonCompletionRow{}
	err := r.DB.Table("lesson_progress lp").
		Select("lp.lesson_id, lp.step_id, lp.completed_at, l.title AS lesson_title").
		Joins("JOIN lessons l ON lp.lesson_id = l.lesson_id").
		Where("lp.user_id = ?", userID).
		Order("lp.completed_at DESC").
		Scan(&rows).Error
	return rows, err
}
