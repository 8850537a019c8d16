package model

type Lesson struct {
	LessonID    uint   `gorm:"column:lesson_id;primaryKey;autoIncrement" json:"lesson_id"`
	CourseID    uint   `gorm:"column:course_id;index;not null" json:"course_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Summary     string `gorm:"type:text" json:"summary"`
	LessonOrder int    `gorm:"column:lesson_order;default:0" json:"lesson_order"`
}

func (Lesson) TableName() string {
	return "lessons"
}
