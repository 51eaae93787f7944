package domain

import (
	"fmt"
	"time"
)

// DoubleParkingAlert is raised when a sensor reports a vehicle straddling the
// gap between two slots. At most one unresolved alert exists per location;
// alerts close only through explicit resolution, never because a later report
// clears the flag.
type DoubleParkingAlert struct {
	ID        int64     `json:"id"`
	Location  string    `json:"location"`
	Resolved  bool      `json:"resolved"`
	Timestamp time.Time `json:"timestamp"`
}

// GapLocation names the monitored gap between slot i and slot i+1.
func GapLocation(i int) string {
	return fmt.Sprintf("Between Slot %d and %d", i, i+1)
}
