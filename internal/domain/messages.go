package domain

import (
	"time"
)

// Message types pushed to observers. Every frame is an Envelope; "init" is
// sent exactly once per connection, before any update.
const (
	MsgInit    = "init"
	MsgUpdate  = "update"
	MsgBooking = "booking"
)

type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// UpdatePayload carries the full slot list after a committed change, so an
// observer never has to reconstruct state from diffs.
type UpdatePayload struct {
	Slots             []Slot `json:"slots"`
	DoubleParkingMid1 bool   `json:"doubleParkingMid1"`
	DoubleParkingMid2 bool   `json:"doubleParkingMid2"`
	AvailableSlots    int    `json:"availableSlots"`
}

type BookingPayload struct {
	SlotNumber  int       `json:"slot_number"`
	NumberPlate string    `json:"number_plate"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// AlertNotification is what the webhook dispatcher posts for a newly raised
// double-parking alert.
type AlertNotification struct {
	AlertID  int64     `json:"alert_id"`
	Location string    `json:"location"`
	RaisedAt time.Time `json:"raised_at"`
}
