package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// ShiftEventSvc is the append-only drawer event log.
type ShiftEventSvc interface {
	// RecordCashDrop appends a cash_drop event to an open shift.
	RecordCashDrop(ctx context.Context, shiftID string, req dto.CashDropRequest, operatorID string) (*domain.ShiftEvent, error)

	// ListShiftEvents returns the shift's events in chronological order.
	ListShiftEvents(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error)
}
