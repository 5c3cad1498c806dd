package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftEvent mirrors a row of the append-only shift_events table.
type ShiftEvent struct {
	EventID    string          `db:"event_id"`
	Seq        int64           `db:"seq"` // insertion order
	ShiftID    string          `db:"shift_id"`
	EventType  string          `db:"event_type"`
	Amount     decimal.Decimal `db:"amount"`
	Notes      *string         `db:"notes"`
	OccurredAt time.Time       `db:"occurred_at"`
	CreatedBy  string          `db:"created_by"`
}
