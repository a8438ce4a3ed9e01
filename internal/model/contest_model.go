package model

import (
	"time"

	"github.com/google/uuid"
)

type Contest struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';index"`
	TokenCost      int       `gorm:"not null;default:0"`
	MaxEntries     *int
	CurrentEntries int `gorm:"not null;default:0"`
	StartsAt       *time.Time
	EndsAt         *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Contest) TableName() string {
	return "contests"
}

type ContestEntry struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContestId        uuid.UUID  `gorm:"type:uuid;not null;index:idx_contest_user"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index:idx_contest_user"`
	PredictionCardId *uuid.UUID `gorm:"type:uuid;index"`
	PredictionValue  string     `gorm:"type:text;not null"`
	ConfidenceLevel  int        `gorm:"not null;default:3"`
	TokensSpent      int        `gorm:"not null"`
	IsCorrect        *bool
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ContestEntry) TableName() string {
	return "contest_entries"
}
