package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStreak struct {
	UserId           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentStreak    int       `gorm:"not null;default:1"`
	LongestStreak    int       `gorm:"not null;default:1"`
	LastActivityDate time.Time `gorm:"type:date;not null"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}

type UserXP struct {
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	XpPoints  int       `gorm:"not null;default:0;check:xp_points >= 0"`
	Level     int       `gorm:"not null;default:1"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserXP) TableName() string {
	return "user_xp"
}

type BadgeDefinition struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	XpReward    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (BadgeDefinition) TableName() string {
	return "badge_definitions"
}

type UserBadge struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	BadgeId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	EarnedAt time.Time `gorm:"default:now();not null"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
