package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialVote uniqueness per (user, target) is enforced in the service layer
// because either target column may be NULL; partial unique indexes are created
// by the migrate cmd as a backstop.
type SocialVote struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID  `gorm:"type:uuid;not null;index"`
	AnalyzerRequestId *uuid.UUID `gorm:"type:uuid;index"`
	PredictionCardId  *uuid.UUID `gorm:"type:uuid;index"`
	VoteType          string     `gorm:"type:varchar(10);not null"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (SocialVote) TableName() string {
	return "social_votes"
}
