package model

type LessonStep struct {
	StepID    uint   `gorm:"column:step_id;primaryKey;autoIncrement" json:"step_id"`
	LessonID  uint   `gorm:"column:lesson_id;index;not null" json:"lesson_id"`
	StepOrder int    `gorm:"column:step_order;default:0" json:"step_order"`
	StepText  string `gorm:"column:step_text;type:text" json:"step_text"`
	StepType  string `gorm:"column:step_type;size:30" json:"step_type"`
	MediaLink string `gorm:"column:media_link;size:255" json:"media_link"`
	Question  string `gorm:"type:text" json:"question"`
}

func (LessonStep) TableName() string {
	return "lesson_steps"
}
