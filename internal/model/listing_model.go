package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Listing struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Status      string            `gorm:"type:varchar(16);not null;index"`
	Category    string            `gorm:"type:varchar(32);not null;index"`
	SubCategory string            `gorm:"type:varchar(64)"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Data        datatypes.JSONMap `gorm:"type:jsonb"`
	OwnerId     string            `gorm:"type:varchar(32);not null;index"`
	Contact     string            `gorm:"type:varchar(32)"`
	Views       int64             `gorm:"not null;default:0"`
	Contacts    int64             `gorm:"not null;default:0"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	ExpiresAt   time.Time         `gorm:"not null;index"`
}

func (Listing) TableName() string {
	return "listings"
}
