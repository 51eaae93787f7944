package domain

import (
	"encoding/json"
)

// SensorReport is one periodic reading from the sensor gateway, normalized
// for any configured slot count. Occupancy[i] is slot i+1; Gaps[i] is the gap
// between slot i+1 and slot i+2.
type SensorReport struct {
	Occupancy      []bool
	Gaps           []bool
	AvailableSlots int
	SensorData     json.RawMessage
}

// SensorReportRequest is the wire format the gateway firmware posts. The
// firmware monitors a fixed three-slot lot with two inter-slot gaps.
type SensorReportRequest struct {
	Slot1             *bool           `json:"slot1" validate:"required"`
	Slot2             *bool           `json:"slot2" validate:"required"`
	Slot3             *bool           `json:"slot3" validate:"required"`
	DoubleParkingMid1 bool            `json:"doubleParkingMid1"`
	DoubleParkingMid2 bool            `json:"doubleParkingMid2"`
	AvailableSlots    int             `json:"availableSlots" validate:"min=0"`
	SensorData        json.RawMessage `json:"sensorData,omitempty"`
}

func (r SensorReportRequest) ToReport() SensorReport {
	return SensorReport{
		Occupancy:      []bool{*r.Slot1, *r.Slot2, *r.Slot3},
		Gaps:           []bool{r.DoubleParkingMid1, r.DoubleParkingMid2},
		AvailableSlots: r.AvailableSlots,
		SensorData:     r.SensorData,
	}
}
