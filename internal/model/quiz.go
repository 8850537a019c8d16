package model

// Quiz belongs to at most one course. A NULL course_id denotes a standalone
// quiz (the "quick quiz" surfaced by /api/quizzes/standalone).
type Quiz struct {
	QuizID      uint   `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quiz_id"`
	CourseID    *uint  `gorm:"column:course_id;index" json:"course_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
