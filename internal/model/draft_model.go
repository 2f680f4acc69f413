package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Draft struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId      string                      `gorm:"type:varchar(32);not null;index"`
	Status       string                      `gorm:"type:varchar(16);not null;index"`
	Category     string                      `gorm:"type:varchar(32);not null"`
	Intent       string                      `gorm:"type:varchar(16);not null"`
	Data         datatypes.JSONMap           `gorm:"type:jsonb"`
	FilledFields datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Draft) TableName() string {
	return "drafts"
}
