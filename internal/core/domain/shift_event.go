package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftEventType classifies an append-only drawer event. New kinds may be added;
// the reconciler ignores kinds it does not know.
type ShiftEventType string

const (
	CashDrop ShiftEventType = "cash_drop"
)

// ShiftEvent is an immutable fact recorded against a shift.
type ShiftEvent struct {
	EventID    string          `json:"eventID"` // Primary Key (UUID)
	ShiftID    string          `json:"shiftID"` // FK -> shifts.shift_id
	Type       ShiftEventType  `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedBy  string          `json:"createdBy"`
}
