package service

import (
	"math"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuizService owns quiz delivery and the scoring/badge-award flow. Scoring is
// server-authoritative everywhere: both entry points recompute the score from
// the stored answer key, never from a client-supplied number.
type QuizService struct {
	QuizRepo *repository.QuizRepository
	DB       *gorm.DB
}

func NewQuizService(quizRepo *repository.QuizRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		QuizRepo: quizRepo,
		DB:       db,
	}
}

// AttemptRequest carries submitted answers keyed by question id. UserID is
// optional and defaults to the guest user.
type AttemptRequest struct {
	UserID  *uint         `json:"user_id"`
	Answers map[uint]uint `json:"answers"`
}

type AttemptResult struct {
	Score         int
	Passed        bool
	BadgesAwarded int64
}

func (s *QuizService) Standalone() (*model.Quiz, error) {
	return s.QuizRepo.FindStandalone()
}

func (s *QuizService) Get(quizID uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByID(quizID)
}

func (s *QuizService) ByCourse(courseID uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByCourse(courseID)
}

// Questions groups the flat question/option join into one record per
// question, options in insertion order. Correctness is never exposed here.
func (s *QuizService) Questions(quizID uint) ([]model.QuestionWithOptions, error) {
	rows, err := s.QuizRepo.QuestionRows(quizID)
	if err != nil {
		return nil, err
	}

	questions := []model.QuestionWithOptions{}
	index := map[uint]int{}
	for _, row := range rows {
		i, seen := index[row.QuestionID]
		if !seen {
			i = len(questions)
			index[row.QuestionID] = i
			questions = append(questions, model.QuestionWithOptions{
				QuestionID:    row.QuestionID,
				QuestionText:  row.QuestionText,
				QuestionImage: row.QuestionImage,
			})
		}
		questions[i].Options = append(questions[i].Options, model.DeliveryOption{
			OptionID:   row.OptionID,
			OptionText: row.OptionText,
		})
	}
	return questions, nil
}

// Attempt scores the submission against the answer key, persists one attempt
// row and grants every badge of the quiz whose threshold the score reaches.
// The attempt insert and badge grants commit or roll back together.
//
// score = round(correct/total * 100), half up; pass at util.PassingScore.
// A quiz whose questions have no correct-flagged option is rejected before
// anything is written.
func (s *QuizService) Attempt(quizID uint, req AttemptRequest) (*AttemptResult, error) {
	key, err := s.QuizRepo.AnswerKey(quizID)
	if err != nil {
		return nil, err
	}

	total := len(key)
	if total == 0 {
		return nil, util.ErrEmptyAnswerKey
	}

	correct := 0
	for questionID, correctOption := range key {
		if req.Answers[questionID] == correctOption {
			correct++
		}
	}

	score := int(math.Round(float64(correct) / float64(total) * 100))
	passed := score >= util.PassingScore

	userID := util.DefaultGuestUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	var awarded int64
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		attempt := &model.QuizAttempt{
			UserID: userID,
			QuizID: quizID,
			Score:  score,
			Passed: passed,
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		badges, err := repository.NewBadgeRepository(tx).EligibleBadges(quizID, score)
		if err != nil {
			return err
		}
		if len(badges) == 0 {
			return nil
		}

		grants := make([]model.UserBadge, 0, len(badges))
		for _, badge := range badges {
			grants = append(grants, model.UserBadge{UserID: userID, BadgeID: badge.BadgeID})
		}

		// Already-held badges conflict on (user_id, badge_id) and are skipped.
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&grants)
		if res.Error != nil {
			return res.Error
		}
		awarded = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AttemptResult{
		Score:         score,
		Passed:        passed,
		BadgesAwarded: awarded,
	}, nil
}
