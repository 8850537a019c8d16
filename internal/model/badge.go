package model

// Badge is an achievement tied to a quiz, unlocked by reaching MinScore on an
// attempt. Several badges may hang off one quiz with different thresholds, so
// a single attempt can grant more than one.
type Badge struct {
	BadgeID    uint   `gorm:"column:badge_id;primaryKey;autoIncrement" json:"badge_id"`
	QuizID     uint   `gorm:"column:quiz_id;index;not null" json:"quiz_id"`
	BadgeName  string `gorm:"column:badge_name;size:100;not null" json:"badge_name"`
	BadgeImage string `gorm:"column:badge_image;size:255" json:"badge_image"`
	MinScore   int    `gorm:"column:min_score;not null" json:"min_score"`
}

func (Badge) TableName() string {
	return "badges"
}
