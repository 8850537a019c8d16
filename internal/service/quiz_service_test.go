package service

import (
	"errors"
	"testing"

	"pawlearn_backend/internal/model"
	"pawlearn_backend/internal/repository"
	"pawlearn_backend/internal/util"

	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(repository.NewQuizRepository(db), db)
}

// seedQuiz creates a quiz with two questions of three options each and
// returns the quiz id plus the question -> correct-option answer key.
func seedQuiz(t *testing.T, db *gorm.DB) (uint, map[uint]uint) {
	t.Helper()

	quiz := model.Quiz{Title: "Pet Care Basics"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	key := map[uint]uint{}
	for q := 0; q < 2; q++ {
		question := model.QuizQuestion{QuizID: quiz.QuizID, QuestionText: "question"}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		for o := 0; o < 3; o++ {
			option := model.QuizOption{
				QuestionID: question.QuestionID,
				OptionText: "option",
				IsCorrect:  o == 1,
			}
			if err := db.Create(&option).Error; err != nil {
				t.Fatalf("seed option: %v", err)
			}
			if option.IsCorrect {
				key[question.QuestionID] = option.OptionID
			}
		}
	}
	return quiz.QuizID, key
}

func wrongAnswers(t *testing.T, db *gorm.DB, key map[uint]uint) map[uint]uint {
	t.Helper()

	answers := map[uint]uint{}
	for questionID, correct := range key {
		var other model.QuizOption
		err := db.Where("question_id = ? AND option_id <> ?", questionID, correct).
			First(&other).Error
		if err != nil {
			t.Fatalf("load wrong option: %v", err)
		}
		answers[questionID] = other.OptionID
	}
	return answers
}

func TestAttemptPerfectScore(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: key})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if !result.Passed {
		t.Error("expected a passing result")
	}

	var attempt model.QuizAttempt
	if err := db.First(&attempt).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.UserID != userID || attempt.QuizID != quizID || attempt.Score != 100 || !attempt.Passed {
		t.Errorf("persisted attempt = %+v", attempt)
	}
}

func TestAttemptHalfScorePassesAtBoundary(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	// One of two correct: 50, exactly the passing threshold.
	answers := map[uint]uint{}
	for questionID, correct := range key {
		answers[questionID] = correct
		break
	}

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: answers})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if result.Score != 50 {
		t.Errorf("score = %d, want 50", result.Score)
	}
	if !result.Passed {
		t.Error("a score equal to the threshold should pass")
	}
}

func TestAttemptZeroScoreFails(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: wrongAnswers(t, db, key)})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("result = %+v, want score 0 and failed", result)
	}

	// Failed attempts are still recorded.
	var count int64
	db.Model(&model.QuizAttempt{}).Count(&count)
	if count != 1 {
		t.Errorf("attempt rows = %d, want 1", count)
	}
}

// seedQuizSized creates a quiz with n two-option questions, the first option
// of each being correct, and returns the quiz id plus the answer key.
func seedQuizSized(t *testing.T, db *gorm.DB, n int) (uint, map[uint]uint) {
	t.Helper()

	quiz := model.Quiz{Title: "Sized"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	key := map[uint]uint{}
	for q := 0; q < n; q++ {
		question := model.QuizQuestion{QuizID: quiz.QuizID, QuestionText: "question"}
		if err := db.Create(&question).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		for o := 0; o < 2; o++ {
			option := model.QuizOption{
				QuestionID: question.QuestionID,
				OptionText: "option",
				IsCorrect:  o == 0,
			}
			if err := db.Create(&option).Error; err != nil {
				t.Fatalf("seed option: %v", err)
			}
			if option.IsCorrect {
				key[question.QuestionID] = option.OptionID
			}
		}
	}
	return quiz.QuizID, key
}

func TestAttemptScoreRoundsHalfUp(t *testing.T) {
	cases := []struct {
		name      string
		questions int
		correct   int
		want      int
	}{
		{"one of eight rounds 12.5 up", 8, 1, 13},
		{"two of three rounds 66.67 up", 3, 2, 67},
		{"one of three rounds 33.33 down", 3, 1, 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := setupTestDB(t)
			quizID, key := seedQuizSized(t, db, tc.questions)
			svc := newQuizService(db)

			answers := map[uint]uint{}
			n := 0
			for questionID, correct := range key {
				if n == tc.correct {
					break
				}
				answers[questionID] = correct
				n++
			}

			userID := uint(7)
			result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: answers})
			if err != nil {
				t.Fatalf("Attempt: %v", err)
			}
			if result.Score != tc.want {
				t.Errorf("score = %d, want %d", result.Score, tc.want)
			}
		})
	}
}

func TestAttemptUnansweredQuestionsScoreZero(t *testing.T) {
	db := setupTestDB(t)
	quizID, _ := seedQuiz(t, db)
	svc := newQuizService(db)

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: map[uint]uint{}})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
}

func TestAttemptEmptyAnswerKeyRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	quiz := model.Quiz{Title: "Broken"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	question := model.QuizQuestion{QuizID: quiz.QuizID, QuestionText: "no correct option"}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	option := model.QuizOption{QuestionID: question.QuestionID, OptionText: "only option"}
	if err := db.Create(&option).Error; err != nil {
		t.Fatalf("seed option: %v", err)
	}

	userID := uint(7)
	_, err := svc.Attempt(quiz.QuizID, AttemptRequest{UserID: &userID, Answers: map[uint]uint{}})
	if !errors.Is(err, util.ErrEmptyAnswerKey) {
		t.Fatalf("err = %v, want ErrEmptyAnswerKey", err)
	}

	// Rejected before anything was written.
	var count int64
	db.Model(&model.QuizAttempt{}).Count(&count)
	if count != 0 {
		t.Errorf("attempt rows = %d, want 0", count)
	}
}

func TestAttemptDefaultsToGuestUser(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	if _, err := svc.Attempt(quizID, AttemptRequest{Answers: key}); err != nil {
		t.Fatalf("Attempt: %v", err)
	}

	var attempt model.QuizAttempt
	if err := db.First(&attempt).Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.UserID != util.DefaultGuestUserID {
		t.Errorf("user_id = %d, want guest default %d", attempt.UserID, util.DefaultGuestUserID)
	}
}

func TestAttemptAwardsTieredBadgesOnce(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	badges := []model.Badge{
		{QuizID: quizID, BadgeName: "Pass", MinScore: 50},
		{QuizID: quizID, BadgeName: "Ace", MinScore: 100},
		{QuizID: quizID, BadgeName: "Unreachable", MinScore: 101},
	}
	if err := db.Create(&badges).Error; err != nil {
		t.Fatalf("seed badges: %v", err)
	}

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: key})
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if result.BadgesAwarded != 2 {
		t.Errorf("badges awarded = %d, want 2", result.BadgesAwarded)
	}

	// A second qualifying attempt records a new attempt but grants nothing.
	result, err = svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: key})
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if result.BadgesAwarded != 0 {
		t.Errorf("repeat badges awarded = %d, want 0", result.BadgesAwarded)
	}

	var attempts, grants int64
	db.Model(&model.QuizAttempt{}).Count(&attempts)
	db.Model(&model.UserBadge{}).Count(&grants)
	if attempts != 2 {
		t.Errorf("attempt rows = %d, want 2", attempts)
	}
	if grants != 2 {
		t.Errorf("user badge rows = %d, want 2", grants)
	}
}

func TestAttemptFailingScoreGrantsNoBadges(t *testing.T) {
	db := setupTestDB(t)
	quizID, key := seedQuiz(t, db)
	svc := newQuizService(db)

	badge := model.Badge{QuizID: quizID, BadgeName: "Pass", MinScore: 50}
	if err := db.Create(&badge).Error; err != nil {
		t.Fatalf("seed badge: %v", err)
	}

	userID := uint(7)
	result, err := svc.Attempt(quizID, AttemptRequest{UserID: &userID, Answers: wrongAnswers(t, db, key)})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if result.BadgesAwarded != 0 {
		t.Errorf("badges awarded = %d, want 0", result.BadgesAwarded)
	}
}

func TestQuestionsGroupsOptionsPerQuestion(t *testing.T) {
	db := setupTestDB(t)
	quizID, _ := seedQuiz(t, db)
	svc := newQuizService(db)

	questions, err := svc.Questions(quizID)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 3 {
			t.Errorf("question %d options = %d, want 3", q.QuestionID, len(q.Options))
		}
	}
}

func TestQuestionsEmptyQuiz(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	quiz := model.Quiz{Title: "Empty"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	questions, err := svc.Questions(quiz.QuizID)
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("questions = %d, want 0", len(questions))
	}
}

func TestStandalonePicksLowestQuizWithoutCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	course := model.Course{Title: "Course"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}

	attached := model.Quiz{CourseID: &course.CourseID, Title: "Course quiz"}
	first := model.Quiz{Title: "Quick quiz"}
	second := model.Quiz{Title: "Another quick quiz"}
	for _, q := range []*model.Quiz{&attached, &first, &second} {
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seed quiz: %v", err)
		}
	}

	quiz, err := svc.Standalone()
	if err != nil {
		t.Fatalf("Standalone: %v", err)
	}
	if quiz.QuizID != first.QuizID {
		t.Errorf("standalone quiz = %d, want %d", quiz.QuizID, first.QuizID)
	}

	byCourse, err := svc.ByCourse(course.CourseID)
	if err != nil {
		t.Fatalf("ByCourse: %v", err)
	}
	if byCourse.QuizID != attached.QuizID {
		t.Errorf("course quiz = %d, want %d", byCourse.QuizID, attached.QuizID)
	}
}

func TestStandaloneNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newQuizService(db)

	if _, err := svc.Standalone(); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}
