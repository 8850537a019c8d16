package model

import "time"

// UserBadge grants a badge to a user at most once; duplicate grants hit the
// composite unique index and are silently ignored.
type UserBadge struct {
	UserBadgeID uint      `gorm:"column:user_badge_id;primaryKey;autoIncrement" json:"user_badge_id"`
	UserID      uint      `gorm:"column:user_id;uniqueIndex:idx_user_badge_key;not null" json:"user_id"`
	BadgeID     uint      `gorm:"column:badge_id;uniqueIndex:idx_user_badge_key;not null" json:"badge_id"`
	EarnedAt    time.Time `gorm:"column:earned_at;autoCreateTime" json:"earned_at"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
