package domain

import (
	"time"
)

// Slot is the live occupancy record for one physical parking slot. There is
// exactly one row per slot number; rows are never deleted.
type Slot struct {
	SlotNumber  int       `json:"slot_number"`
	IsOccupied  bool      `json:"is_occupied"`
	LastUpdated time.Time `json:"last_updated"`
}

// SlotStatus is the query-boundary view of a slot, with the per-slot event
// counter the dashboard shows next to it.
type SlotStatus struct {
	Slot
	TodayEvents int64 `json:"today_events"`
}
