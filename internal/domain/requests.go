package domain

import (
	"time"
)

type BookingRequest struct {
	SlotNumber  int       `json:"slot_number" validate:"required,slot"`
	NumberPlate string    `json:"number_plate" validate:"required,plate"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}

type BookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ResolveResponse struct {
	Success bool `json:"success"`
}

type ParkingStats struct {
	TodayEvents    int64 `json:"today_events"`
	OccupiedSlots  int64 `json:"occupied_slots"`
	ActiveAlerts   int64 `json:"active_alerts"`
	AvailableSlots int64 `json:"available_slots"`
}
