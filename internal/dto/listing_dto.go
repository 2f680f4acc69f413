package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListingResponse struct {
	Id          uuid.UUID              `json:"id"`
	Status      string                 `json:"status"`
	Category    string                 `json:"category"`
	SubCategory string                 `json:"sub_category"`
	Title       string                 `json:"title"`
	Data        map[string]interface{} `json:"data"`
	OwnerId     string                 `json:"owner_id"`
	Views       int64                  `json:"views"`
	Contacts    int64                  `json:"contacts"`
	CreatedAt   time.Time              `json:"created_at"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

type ListListingsRequest struct {
	Category string `query:"category"`
	Status   string `query:"status"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type ListListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int64             `json:"total"`
}

type ExpireListingsResponse struct {
	Expired int `json:"expired"`
}
