package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Refresh cycle states reported by the scheduler.
const (
	RefreshStateIdle     = "idle"
	RefreshStateFetching = "fetching"
	RefreshStateReady    = "ready"
	RefreshStateFailed   = "failed"
)

// SlotStatus describes one snapshot slot (profile or repositories).
type SlotStatus struct {
	Loaded      bool      `json:"loaded"`
	LastRefresh time.Time `json:"last_refresh,omitempty"`
	LastError   string    `json:"last_error,omitempty"`
}

// RefreshStatus is the scheduler's externally visible state.
type RefreshStatus struct {
	State        string     `json:"state"`
	LastCycleAt  time.Time  `json:"last_cycle_at,omitempty"`
	Profile      SlotStatus `json:"profile"`
	Repositories SlotStatus `json:"repositories"`
}

// String returns the JSON string representation of the refresh status
func (s *RefreshStatus) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal refresh status: %v"}`, err)
	}
	return string(data)
}
