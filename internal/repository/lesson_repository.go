package repository

import (
	"errors"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/util"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) FindByCourse(courseID uint) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).Order("lesson_order").Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(lessonID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("lesson_id = ?", lessonID).First(&lesson).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) StepsByLesson(lessonID uint) ([]model.LessonStep, error) {
	var steps []model.LessonStep
	err := r.DB.Where("lesson_id = ?", lessonID).Order("step_order").Find(&steps).Error
	return steps, err
}
