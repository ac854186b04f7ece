package api

import (
	"time"

	_ "github.com/okadachi/portfolio-api/docs"
)

// LoadingResponse signals that a section has no data yet
// @Description Returned with HTTP 503 until the backing slot has loaded once
// @swagger:model LoadingResponse
type LoadingResponse struct {
	// Loading status
	// @example loading
	Status string `json:"status" example:"loading"`
}

// RefreshResponse acknowledges a refresh trigger
// @Description Returned with HTTP 202 when a refresh has been scheduled
// @swagger:model RefreshResponse
type RefreshResponse struct {
	// Refresh status
	// @example scheduled
	Status string `json:"status" example:"scheduled"`
	// When the trigger was accepted
	// @example 2024-01-01T12:00:00Z
	AcceptedAt time.Time `json:"accepted_at"`
}
