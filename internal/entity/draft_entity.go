package entity

import (
	"time"

	"github.com/google/uuid"
)

type DraftStatus string

const (
	DraftStatusDraft     DraftStatus = "draft"
	DraftStatusPublished DraftStatus = "published"
	DraftStatusCancelled DraftStatus = "cancelled"
)

// Draft is an in-progress listing being filled out conversationally.
// Data maps the category name to its flat field map, plus a shared nested
// "location" object. At most one draft per owner may hold status "draft".
type Draft struct {
	Id           uuid.UUID
	OwnerId      string // WhatsApp user id
	Status       DraftStatus
	Category     string
	Intent       string // offer | find; postings default to offer
	Data         map[string]interface{}
	FilledFields []string // field paths answered so far, in answer order
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// NewDraft returns a draft with the empty data skeleton for a category.
func NewDraft(ownerId, category, intentContext string) *Draft {
	if intentContext == "" {
		intentContext = "offer"
	}
	return &Draft{
		Id:       uuid.New(),
		OwnerId:  ownerId,
		Status:   DraftStatusDraft,
		Category: category,
		Intent:   intentContext,
		Data: map[string]interface{}{
			category:   map[string]interface{}{},
			"location": map[string]interface{}{},
		},
		FilledFields: []string{},
		CreatedAt:    time.Now(),
	}
}
