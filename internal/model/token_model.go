package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserTokenBalance struct {
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance   int       `gorm:"not null;default:0;check:balance >= 0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserTokenBalance) TableName() string {
	return "user_token_balances"
}

type TokenTransaction struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	TokensDeducted int            `gorm:"not null"`
	Type           string         `gorm:"type:varchar(20);not null;index"`
	Action         string         `gorm:"type:varchar(100)"`
	RelatedModelId *uuid.UUID     `gorm:"type:uuid"`
	RelatedId      *uuid.UUID     `gorm:"type:uuid"`
	Metadata       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"default:now();not null"`
}

func (TokenTransaction) TableName() string {
	return "token_transactions"
}
