//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"parkwatch/internal/domain"
	"parkwatch/pkg/e"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

const testSlotCount = 3

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := ensureSchema(ctx, testPool, testSlotCount); err != nil {
		fmt.Println("ensureSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resetTables(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, stmt := range []string{
		`TRUNCATE TABLE bookings, parking_events, double_parking_alerts`,
		`UPDATE parking_slots SET is_occupied = false, last_updated = now()`,
	} {
		if _, err := testPool.Exec(ctx, stmt); err != nil {
			t.Fatalf("reset tables: %v", err)
		}
	}
}

// --- Slots ---

func TestSlots_SetOccupancyAndList(t *testing.T) {
	resetTables(t)

	repo := NewSlots(testPool, testLogger())
	ctx := context.Background()

	if err := repo.SetOccupancy(ctx, 2, true); err != nil {
		t.Fatalf("SetOccupancy: %v", err)
	}

	slots, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != testSlotCount {
		t.Fatalf("got %d slots, want %d", len(slots), testSlotCount)
	}
	for _, s := range slots {
		want := s.SlotNumber == 2
		if s.IsOccupied != want {
			t.Errorf("slot %d occupied = %v, want %v", s.SlotNumber, s.IsOccupied, want)
		}
	}
}

func TestSlots_SetOccupancy_UnknownSlot(t *testing.T) {
	resetTables(t)

	repo := NewSlots(testPool, testLogger())

	err := repo.SetOccupancy(context.Background(), 99, true)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSlots_ListStatus_CountsTodayEvents(t *testing.T) {
	resetTables(t)

	slots := NewSlots(testPool, testLogger())
	events := NewEvents(testPool, testLogger())
	ctx := context.Background()

	two := 2
	for i := 0; i < 3; i++ {
		ev := &domain.ParkingEvent{EventType: domain.EventOccupy, SlotNumber: &two}
		if err := events.Append(ctx, ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	statuses, err := slots.ListStatus(ctx)
	if err != nil {
		t.Fatalf("ListStatus: %v", err)
	}
	for _, st := range statuses {
		want := int64(0)
		if st.SlotNumber == 2 {
			want = 3
		}
		if st.TodayEvents != want {
			t.Errorf("slot %d today_events = %d, want %d", st.SlotNumber, st.TodayEvents, want)
		}
	}
}

// --- Events ---

func TestEvents_AppendAndList_NewestFirst(t *testing.T) {
	resetTables(t)

	repo := NewEvents(testPool, testLogger())
	ctx := context.Background()

	one := 1
	for _, typ := range []domain.EventType{domain.EventOccupy, domain.EventVacate, domain.EventBook} {
		ev := &domain.ParkingEvent{EventType: typ, SlotNumber: &one}
		if err := repo.Append(ctx, ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
		if ev.ID == 0 || ev.Timestamp.IsZero() {
			t.Fatalf("append did not fill id/timestamp: %+v", ev)
		}
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].EventType != domain.EventBook || got[1].EventType != domain.EventVacate {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestEvents_List_BadLimit(t *testing.T) {
	resetTables(t)

	repo := NewEvents(testPool, testLogger())

	_, err := repo.List(context.Background(), 0)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

// --- Alerts ---

func TestAlerts_Raise_IdempotentWhileOpen(t *testing.T) {
	resetTables(t)

	repo := NewAlerts(testPool, testLogger())
	ctx := context.Background()
	location := domain.GapLocation(1)

	first, created, err := repo.Raise(ctx, location)
	if err != nil {
		t.Fatalf("Raise: %v", err)
	}
	if !created {
		t.Fatal("first raise: created = false, want true")
	}

	second, created, err := repo.Raise(ctx, location)
	if err != nil {
		t.Fatalf("second Raise: %v", err)
	}
	if created {
		t.Fatal("second raise: created = true, want false")
	}
	if second.ID != first.ID {
		t.Fatalf("second raise returned id %d, want existing %d", second.ID, first.ID)
	}

	if err := repo.Resolve(ctx, first.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	third, created, err := repo.Raise(ctx, location)
	if err != nil {
		t.Fatalf("third Raise: %v", err)
	}
	if !created || third.ID == first.ID {
		t.Fatalf("raise after resolve: created=%v id=%d, want new alert", created, third.ID)
	}
}

func TestAlerts_Resolve_Twice(t *testing.T) {
	resetTables(t)

	repo := NewAlerts(testPool, testLogger())
	ctx := context.Background()

	alert, _, err := repo.Raise(ctx, domain.GapLocation(2))
	if err != nil {
		t.Fatalf("Raise: %v", err)
	}

	if err := repo.Resolve(ctx, alert.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	err = repo.Resolve(ctx, alert.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("second resolve err = %v, want ErrNotFound", err)
	}
}

func TestAlerts_ListOpen_ExcludesResolved(t *testing.T) {
	resetTables(t)

	repo := NewAlerts(testPool, testLogger())
	ctx := context.Background()

	first, _, err := repo.Raise(ctx, domain.GapLocation(1))
	if err != nil {
		t.Fatalf("Raise: %v", err)
	}
	if _, _, err := repo.Raise(ctx, domain.GapLocation(2)); err != nil {
		t.Fatalf("Raise: %v", err)
	}

	if err := repo.Resolve(ctx, first.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	open, err := repo.ListOpen(ctx)
	if err != nil {
		t.Fatalf("ListOpen: %v", err)
	}
	if len(open) != 1 || open[0].Location != domain.GapLocation(2) {
		t.Fatalf("open alerts = %+v", open)
	}
}

// --- Bookings ---

func TestBookings_Create_OverlapConflict(t *testing.T) {
	resetTables(t)

	repo := NewBookings(testPool, testLogger())
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	first := &domain.Booking{SlotNumber: 1, NumberPlate: "KA-1234", StartTime: start, EndTime: end}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == 0 || first.CreatedAt.IsZero() {
		t.Fatalf("create did not fill id/created_at: %+v", first)
	}

	overlapping := &domain.Booking{SlotNumber: 1, NumberPlate: "KA-9999", StartTime: start.Add(time.Hour), EndTime: end.Add(time.Hour)}
	err := repo.Create(ctx, overlapping)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("overlap err = %v, want ErrConflict", err)
	}

	// Touching windows share only a boundary instant.
	touching := &domain.Booking{SlotNumber: 1, NumberPlate: "KA-9999", StartTime: end, EndTime: end.Add(time.Hour)}
	if err := repo.Create(ctx, touching); err != nil {
		t.Fatalf("touching window rejected: %v", err)
	}

	// The same window is free on another slot.
	otherSlot := &domain.Booking{SlotNumber: 2, NumberPlate: "KA-9999", StartTime: start, EndTime: end}
	if err := repo.Create(ctx, otherSlot); err != nil {
		t.Fatalf("other slot rejected: %v", err)
	}
}

func TestBookings_Create_ConcurrentOverlap_OneWins(t *testing.T) {
	resetTables(t)

	repo := NewBookings(testPool, testLogger())

	start := time.Now().UTC().Truncate(time.Second).Add(time.Hour)

	// Both windows intersect; the row lock serializes the two transactions,
	// so whichever commits second must see the winner's row and fail.
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		offset := time.Duration(i) * 30 * time.Minute
		plate := fmt.Sprintf("KA-100%d", i)
		go func(offset time.Duration, plate string) {
			b := &domain.Booking{
				SlotNumber:  1,
				NumberPlate: plate,
				StartTime:   start.Add(offset),
				EndTime:     start.Add(offset + time.Hour),
			}
			errs <- repo.Create(context.Background(), b)
		}(offset, plate)
	}

	var succeeded, conflicted int
	for i := 0; i < 2; i++ {
		switch err := <-errs; {
		case err == nil:
			succeeded++
		case errors.Is(err, e.ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || conflicted != 1 {
		t.Fatalf("succeeded=%d conflicted=%d, want exactly one of each", succeeded, conflicted)
	}

	all, err := repo.ListBySlot(context.Background(), 1, nil)
	if err != nil {
		t.Fatalf("ListBySlot: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d committed bookings, want 1", len(all))
	}
}

func TestBookings_Create_UnknownSlot(t *testing.T) {
	resetTables(t)

	repo := NewBookings(testPool, testLogger())

	start := time.Now().UTC()
	b := &domain.Booking{SlotNumber: 99, NumberPlate: "KA-1234", StartTime: start, EndTime: start.Add(time.Hour)}

	err := repo.Create(context.Background(), b)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBookings_ListBySlot_ActiveFilter(t *testing.T) {
	resetTables(t)

	repo := NewBookings(testPool, testLogger())
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)

	past := &domain.Booking{SlotNumber: 1, NumberPlate: "KA-1111", StartTime: now.Add(-3 * time.Hour), EndTime: now.Add(-2 * time.Hour)}
	future := &domain.Booking{SlotNumber: 1, NumberPlate: "KA-2222", StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)}
	for _, b := range []*domain.Booking{past, future} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.ListBySlot(ctx, 1, nil)
	if err != nil {
		t.Fatalf("ListBySlot: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d bookings, want 2", len(all))
	}

	active, err := repo.ListBySlot(ctx, 1, &now)
	if err != nil {
		t.Fatalf("ListBySlot active: %v", err)
	}
	if len(active) != 1 || active[0].NumberPlate != "KA-2222" {
		t.Fatalf("active bookings = %+v", active)
	}
}

// --- Stats ---

func TestStats_Get(t *testing.T) {
	resetTables(t)

	slots := NewSlots(testPool, testLogger())
	events := NewEvents(testPool, testLogger())
	alerts := NewAlerts(testPool, testLogger())
	stats := NewStats(testPool, testLogger())
	ctx := context.Background()

	if err := slots.SetOccupancy(ctx, 1, true); err != nil {
		t.Fatalf("SetOccupancy: %v", err)
	}
	one := 1
	if err := events.Append(ctx, &domain.ParkingEvent{EventType: domain.EventOccupy, SlotNumber: &one}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, _, err := alerts.Raise(ctx, domain.GapLocation(1)); err != nil {
		t.Fatalf("Raise: %v", err)
	}

	got, err := stats.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TodayEvents != 1 || got.OccupiedSlots != 1 || got.ActiveAlerts != 1 || got.AvailableSlots != int64(testSlotCount-1) {
		t.Fatalf("stats = %+v", got)
	}
}
