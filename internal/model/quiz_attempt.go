package model

import "time"

// QuizAttempt records one scoring event. Attempts are never deduplicated;
// every submission appends a row.
type QuizAttempt struct {
	AttemptID   uint      `gorm:"column:attempt_id;primaryKey;autoIncrement" json:"attempt_id"`
	UserID      uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	QuizID      uint      `gorm:"column:quiz_id;index;not null" json:"quiz_id"`
	Score       int       `gorm:"not null" json:"score"`
	Passed      bool      `gorm:"not null" json:"passed"`
	AttemptedAt time.Time `gorm:"column:attempted_at;autoCreateTime" json:"attempted_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
