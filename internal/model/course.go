package model

// Course is the top level of the learning hierarchy: course -> lesson -> step.
type Course struct {
	CourseID    uint   `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Summary     string `gorm:"type:text" json:"summary"`
	CoverImage  string `gorm:"column:cover_image;size:255" json:"cover_image"`
	CourseOrder int    `gorm:"column:course_order;default:0" json:"course_order"`

	// Derived per listing, not persisted.
	LessonsCount int64 `gorm:"-" json:"lessons_count"`
}

func (Course) TableName() string {
	return "courses"
}
