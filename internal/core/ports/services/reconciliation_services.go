package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconcilerSvc derives the cash position of a shift.
type ReconcilerSvc interface {
	// ComputeSummary recomputes the shift's summary from its sales, expenses and events.
	// It never writes.
	ComputeSummary(ctx context.Context, shiftID string) (*domain.ReconciliationSummary, error)

	// Variance compares a counted amount with an expected balance.
	Variance(counted, expected decimal.Decimal) domain.Variance
}
