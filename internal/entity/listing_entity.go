package entity

import (
	"time"

	"github.com/google/uuid"
)

type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusExpired ListingStatus = "expired"
)

// ListingTTL is the fixed lifetime of a published listing.
const ListingTTL = 30 * 24 * time.Hour

// Listing is a finalized, searchable marketplace record. After publishing
// only Status and the metrics counters change.
type Listing struct {
	Id          uuid.UUID
	Status      ListingStatus
	Category    string
	SubCategory string // derived from the category's primary type field
	Title       string
	Data        map[string]interface{}
	OwnerId     string
	Contact     string
	Views       int64
	Contacts    int64
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the listing is past its expiry horizon.
func (l *Listing) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
