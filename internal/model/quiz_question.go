package model

type QuizQuestion struct {
	QuestionID    uint   `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuizID        uint   `gorm:"column:quiz_id;index;not null" json:"quiz_id"`
	QuestionText  string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionImage string `gorm:"column:question_image;size:255" json:"question_image"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}
