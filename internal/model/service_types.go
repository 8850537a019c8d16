package model

import "time"

// AnimalSummary is one row of the main animal listing: the board columns plus
// the derived age and the front image path (null if the animal has none).
type AnimalSummary struct {
	AnimalID          uint    `json:"animal_id"`
	Name              string  `json:"name"`
	Species           string  `json:"species"`
	Breed             string  `json:"breed"`
	AgeMonths         int     `json:"age_months"`
	Gender            string  `json:"gender"`
	AdoptionStatus    string  `json:"adoption_status"`
	VaccinationStatus string  `json:"vaccination_status"`
	Temperament       string  `json:"temperament"`
	Image             *string `json:"image"`
}

// AnimalProfile is the single-animal view: the full row, derived age and all
// stored images.
type AnimalProfile struct {
	Animal
	AgeMonths int           `json:"age_months"`
	Images    []AnimalImage `json:"images"`
}

// QuestionWithOptions is one quiz question with its delivery options, grouped
// from the flat question/option join. Correctness flags are not part of it.
type QuestionWithOptions struct {
	QuestionID    uint             `json:"question_id"`
	QuestionText  string           `json:"question_text"`
	QuestionImage string           `json:"question_image"`
	Options       []DeliveryOption `json:"options"`
}

type DeliveryOption struct {
	OptionID   uint   `json:"option_id"`
	OptionText string `json:"option_text"`
}

// Dashboard rows: joined, most-recent-first listings per user.

type LessonCompletionRow struct {
	LessonID    uint      `gorm:"column:lesson_id" json:"lesson_id"`
	StepID      uint      `gorm:"column:step_id" json:"step_id"`
	CompletedAt time.Time `gorm:"column:completed_at" json:"completed_at"`
	LessonTitle string    `gorm:"column:lesson_title" json:"lesson_title"`
}

type QuizAttemptRow struct {
	QuizID      uint      `gorm:"column:quiz_id" json:"quiz_id"`
	Score       int       `gorm:"column:score" json:"score"`
	Passed      bool      `gorm:"column:passed" json:"passed"`
	AttemptedAt time.Time `gorm:"column:attempted_at" json:"attempted_at"`
	QuizTitle   string    `gorm:"column:quiz_title" json:"quiz_title"`
}

type EarnedBadgeRow struct {
	BadgeID    uint      `gorm:"column:badge_id" json:"badge_id"`
	BadgeName  string    `gorm:"column:badge_name" json:"badge_name"`
	BadgeImage string    `gorm:"column:badge_image" json:"badge_image"`
	EarnedAt   time.Time `gorm:"column:earned_at" json:"earned_at"`
}
