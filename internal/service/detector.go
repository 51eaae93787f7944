package service

import (
	"time"

	"parkwatch/internal/domain"
)

// Conflict detection is pure: it looks at stored state plus a reading and
// says what changed. All side effects stay in the engine.

type OccupancyChange struct {
	SlotNumber int
	Occupied   bool
	Event      domain.EventType
}

// DetectOccupancyChanges compares stored slots with reported occupancy and
// returns one change per slot whose state flipped. A slot reported in the
// state it already holds produces nothing, so repeated identical reports are
// idempotent.
func DetectOccupancyChanges(current []domain.Slot, reported []bool) []OccupancyChange {
	byNumber := make(map[int]bool, len(current))
	for _, s := range current {
		byNumber[s.SlotNumber] = s.IsOccupied
	}

	var changes []OccupancyChange
	for i, occupied := range reported {
		slotNumber := i + 1
		was, ok := byNumber[slotNumber]
		if ok && was == occupied {
			continue
		}
		ev := domain.EventVacate
		if occupied {
			ev = domain.EventOccupy
		}
		changes = append(changes, OccupancyChange{
			SlotNumber: slotNumber,
			Occupied:   occupied,
			Event:      ev,
		})
	}
	return changes
}

// GapAlertLocations maps raised gap flags to their location labels. A false
// flag never clears anything: alerts close only through explicit resolution,
// which keeps a flapping sensor from cycling alerts open and shut.
func GapAlertLocations(gaps []bool) []string {
	var locations []string
	for i, raised := range gaps {
		if raised {
			locations = append(locations, domain.GapLocation(i+1))
		}
	}
	return locations
}

// Overlap reports whether two half-open intervals [s1,e1) and [s2,e2)
// intersect. Windows that only share a boundary instant do not overlap.
func Overlap(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
