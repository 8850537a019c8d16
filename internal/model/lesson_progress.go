package model

import "time"

// LessonProgress marks one completed step for one user. The composite unique
// index gives the mark-complete endpoint its idempotency: a repeat insert
// conflicts and leaves the original completed_at untouched.
type LessonProgress struct {
	ProgressID  uint      `gorm:"column:progress_id;primaryKey;autoIncrement" json:"progress_id"`
	UserID      uint      `gorm:"column:user_id;uniqueIndex:idx_lesson_progress_key;not null" json:"user_id"`
	LessonID    uint      `gorm:"column:lesson_id;uniqueIndex:idx_lesson_progress_key;not null" json:"lesson_id"`
	StepID      uint      `gorm:"column:step_id;uniqueIndex:idx_lesson_progress_key;not null" json:"step_id"`
	CompletedAt time.Time `gorm:"column:completed_at;autoCreateTime" json:"completed_at"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
