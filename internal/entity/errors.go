package entity

import "errors"

var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidCategory = errors.New("invalid listing category")
)
