package specification

import (
	"time"

	"gorm.io/gorm"
)

// ExpiredBefore matches active listings whose expiry horizon has passed.
type ExpiredBefore struct {
	Now time.Time
}

func (s ExpiredBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at < ?", s.Now)
}

// BySubCategory filters on the derived sub-category (e.g. "flat", "plumber").
type BySubCategory struct {
	SubCategory string
}

func (s BySubCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sub_category = ?", s.SubCategory)
}
