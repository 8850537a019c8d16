package repository

import (
	"pawlearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("course_id").Find(&courses).Error
	return courses, err
}

// LessonCounts returns lessons-per-course in one grouped query; the service
// merges it into the listing instead of issuing a correlated count per row.
func (r *CourseRepository) LessonCounts() (map[uint]int64, error) {
	var rows []struct {
		CourseID uint  `gorm:"column:course_id"`
		Total    int64 `gorm:"column:total"`
	}
	err := r.DB.Model(&model.Lesson{}).
		Select("course_id, COUNT(*) AS total").
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Total
	}
	return counts, nil
}
