package store

import "time"

// Category constants - the fixed set of listing types the bot understands.
const (
	CategoryHousing     = "housing"
	CategoryUrbanHelp   = "urban_help"
	CategoryVehicle     = "vehicle"
	CategoryElectronics = "electronics"
	CategoryFurniture   = "furniture"
	CategoryJob         = "job"
	CategoryCommodity   = "commodity"
)

// Categories lists every supported category in display order.
var Categories = []string{
	CategoryHousing,
	CategoryUrbanHelp,
	CategoryVehicle,
	CategoryElectronics,
	CategoryFurniture,
	CategoryJob,
	CategoryCommodity,
}

// IsCategory reports whether s is a known category name.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Session dialogue modes
const (
	ModeIdle    = "idle"
	ModePosting = "posting"
)

// Sentinel values for Session.ExpectedField. Anything else is a literal
// field path the next message answers.
const (
	FieldConfirmation   = "confirmation"
	FieldCategoryChoice = "category_choice"
	FieldDraftChoice    = "draft_choice"
	FieldEditChoice     = "edit_choice"
)

// Intent context - whether the user is providing or seeking.
const (
	ContextOffer = "offer"
	ContextFind  = "find"
)

// Session represents the active per-user dialogue state in memory.
// The Draft is the owning record; DraftID is only a reference.
type Session struct {
	ID            string `json:"id"` // user id
	UserID        string `json:"user_id"`
	Mode          string `json:"mode"` // idle | posting
	Category      string `json:"category"`
	DraftID       string `json:"draft_id"`
	ExpectedField string `json:"expected_field"` // field path or sentinel

	// PendingCategory holds the category of a new posting attempt while the
	// user decides what to do with an existing active draft.
	PendingCategory string `json:"pending_category"`

	LastQuery string `json:"last_query"`

	// LastResults holds the listing ids of the most recent search reply,
	// in display order, so "2" can select the second result.
	LastResults []string `json:"last_results"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSession returns an idle session for the given user.
func NewSession(userID string) *Session {
	now := time.Now()
	return &Session{
		ID:        userID,
		UserID:    userID,
		Mode:      ModeIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset clears all posting state and returns the session to idle.
func (s *Session) Reset() {
	s.Mode = ModeIdle
	s.Category = ""
	s.DraftID = ""
	s.ExpectedField = ""
	s.PendingCategory = ""
	s.LastResults = nil
	s.UpdatedAt = time.Now()
}
