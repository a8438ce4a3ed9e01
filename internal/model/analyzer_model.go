package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalyzerModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	TokenCost int       `gorm:"not null;default:1"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (AnalyzerModel) TableName() string {
	return "analyzer_models"
}

type AnalyzerRequest struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ModelId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status     string         `gorm:"type:varchar(20);not null;default:'processing';index"`
	TokensUsed int            `gorm:"not null"`
	ImageUrl   *string        `gorm:"type:text"`
	InputText  *string        `gorm:"type:text"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	Result     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (AnalyzerRequest) TableName() string {
	return "analyzer_requests"
}
