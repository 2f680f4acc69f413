package events

import "time"

// Domain event type codes. Codes double as the NATS subject suffix.
const (
	TypeListingPublished = "listing.published"
	TypeListingExpired   = "listing.expired"
	TypeDraftCancelled   = "draft.cancelled"
)

// NewListingPublished fires when a confirmed draft becomes a live listing.
func NewListingPublished(listingID, ownerID, category, title string) Event {
	return BaseEvent{
		Type: TypeListingPublished,
		Data: map[string]interface{}{
			"listing_id": listingID,
			"owner_id":   ownerID,
			"category":   category,
			"title":      title,
		},
		OccurredAt: time.Now(),
	}
}

// NewListingExpired fires when the expiry batch retires a listing. Owner
// and title ride along so consumers can notify without a lookup.
func NewListingExpired(listingID, ownerID, category, title string) Event {
	return BaseEvent{
		Type: TypeListingExpired,
		Data: map[string]interface{}{
			"listing_id": listingID,
			"owner_id":   ownerID,
			"category":   category,
			"title":      title,
		},
		OccurredAt: time.Now(),
	}
}

// NewDraftCancelled fires when a user abandons a posting flow.
func NewDraftCancelled(draftID, ownerID, category string) Event {
	return BaseEvent{
		Type: TypeDraftCancelled,
		Data: map[string]interface{}{
			"draft_id": draftID,
			"owner_id": ownerID,
			"category": category,
		},
		OccurredAt: time.Now(),
	}
}
