package domain

import (
	"time"
)

type EventType string

const (
	EventOccupy EventType = "occupy"
	EventVacate EventType = "vacate"
	EventBook   EventType = "book"
)

// ParkingEvent is an append-only journal entry. SlotNumber is nil for events
// that are not tied to a single slot.
type ParkingEvent struct {
	ID         int64     `json:"id"`
	EventType  EventType `json:"event_type"`
	SlotNumber *int      `json:"slot_number,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
