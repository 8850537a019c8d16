package model

// QuizOption is one answer choice. IsCorrect is the answer key and is never
// serialized on delivery paths.
type QuizOption struct {
	OptionID   uint   `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	QuestionID uint   `gorm:"column:question_id;index;not null" json:"question_id"`
	OptionText string `gorm:"column:option_text;type:text;not null" json:"option_text"`
	IsCorrect  bool   `gorm:"column:is_correct;default:false" json:"-"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}
