package domain

import (
	"time"
)

// Booking reserves a slot for a half-open window [StartTime, EndTime).
// Bookings are immutable once created; an expired booking (EndTime in the
// past) is filtered at read time, never deleted.
type Booking struct {
	ID          int64     `json:"id"`
	SlotNumber  int       `json:"slot_number"`
	NumberPlate string    `json:"number_plate"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
}
