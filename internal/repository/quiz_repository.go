package repository

import (
	"errors"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// FindStandalone returns the lowest-id quiz with no course association.
func (r *QuizRepository) FindStandalone() (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("course_id IS NULL").Order("quiz_id ASC").First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByID(quizID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("quiz_id = ?", quizID).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByCourse(courseID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Where("course_id = ?", courseID).Order("quiz_id ASC").First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// QuestionOptionRow is one row of the flat question/option join that the
// service groups into QuestionWithOptions records.
type QuestionOptionRow struct {
	QuestionID    uint   `gorm:"column:question_id"`
	QuestionText  string `gorm:"column:question_text"`
	QuestionImage string `gorm:"column:question_image"`
	OptionID      uint   `gorm:"column:option_id"`
	OptionText    string `gorm:"column:option_text"`
}

func (r *QuizRepository) QuestionRows(quizID uint) ([]QuestionOptionRow, error) {
	rows := []QuestionOptionRow{}
	err := r.DB.Table("quiz_questions q").
		Select("q.question_id, q.question_text, q.question_image, o.option_id, o.option_text").
		Joins("JOIN quiz_options o ON q.question_id = o.question_id").
		Where("q.quiz_id = ?", quizID).
		Order("q.question_id, o.option_id").
		Scan(&rows).Error
	return rows, err
}

// AnswerKey maps each question of the quiz to its correct option. Questions
// without a correct-flagged option are absent; if one somehow carries several,
// the last row wins.
func (r *QuizRepository) AnswerKey(quizID uint) (map[uint]uint, error) {
	var rows []struct {
		QuestionID uint `gorm:"column:question_id"`
		OptionID   uint `gorm:"column:option_id"`
	}
	err := r.DB.Table("quiz_questions q").
		Select("q.question_id, o.option_id").
		Joins("JOIN quiz_options o ON q.question_id = o.question_id").
		Where("q.quiz_id = ? AND o.is_correct = ?", quizID, true).
		Order("q.question_id, o.option_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	key := make(map[uint]uint, len(rows))
	for _, row := range rows {
		key[row.QuestionID] = row.OptionID
	}
	return key, nil
}

func (r *QuizRepository) AttemptsByUser(userID uint) ([]model.QuizAttemptRow, error) {
	rows := []model.QuizAttemptRow{}
	err := r.DB.Table("quiz_attempts qa").
		Select("qa.quiz_id, qa.score, qa.passed, qa.attempted_at, q.title AS quiz_title").
		Joins("JOIN quizzes q ON qa.quiz_id = q.quiz_id").
		Where("qa.user_id = ?", userID).
		Order("qa.attempted_at DESC").
		Scan(&rows).Error
	return rows, err
}
