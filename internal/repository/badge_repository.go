package repository

import (
	"pawlearn_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

// EligibleBadges lists the quiz's badges whose threshold the score reaches.
func (r *BadgeRepository) EligibleBadges(quizID uint, score int) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("quiz_id = ? AND min_score <= ?", quizID, score).
		Order("badge_id").
		Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) BadgesByUser(userID uint) ([]model.EarnedBadgeRow, error) {
	rows := []model.EarnedBadgeRow{}
	err := r.DB.Table("user_badges ub").
		Select("b.badge_id, b.badge_name, b.badge_image, ub.earned_at").
		Joins("JOIN badges b ON ub.badge_id = b.badge_id").
		Where("ub.user_id = ?", userID).
		Order("ub.earned_at DESC").
		Scan(&rows).Error
	return rows, err
}
