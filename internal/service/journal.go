package service

import (
	"context"
	"fmt"

	"parkwatch/internal/domain"
	"parkwatch/pkg/e"
)

// Journal is a read-side projection over the append-only event log. Reads on
// the same store see every event appended before them (read-your-writes);
// ordering is newest first, ties broken by id.
type Journal struct {
	events       EventRepository
	defaultLimit int
}

func NewJournal(events EventRepository, defaultLimit int) *Journal {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	return &Journal{events: events, defaultLimit: defaultLimit}
}

// Events lists the most recent events. limit 0 is the internal "caller did
// not ask for a limit" sentinel and substitutes the configured default; it is
// never a client value, since the HTTP boundary rejects explicit non-positive
// limits before calling here. Negative limits are rejected before touching
// storage.
func (j *Journal) Events(ctx context.Context, limit int) ([]domain.ParkingEvent, error) {
	const op = "service.Journal.Events"

	if limit < 0 {
		return nil, fmt.Errorf("%s: limit must be positive: %w", op, e.ErrInvalidInput)
	}
	if limit == 0 {
		limit = j.defaultLimit
	}

	return j.events.List(ctx, limit)
}
