package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a shift by its ID. Returns apperrors.ErrNotFound if absent.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShiftsByOperator returns every shift in status open for the operator.
	// More than one result is an integrity fault the caller must surface.
	FindOpenShiftsByOperator(ctx context.Context, operatorID string) ([]domain.Shift, error)

	// ListShiftsByOperator retrieves a page of an operator's shifts, newest first.
	// It returns the shifts, a token for the next page, and an error.
	ListShiftsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.Shift, *string, error)

	// CountOpenShiftsPerOperator returns operators holding more than one open shift, with their counts.
	CountOpenShiftsPerOperator(ctx context.Context) (map[string]int, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a newly opened shift. A second open shift for the same
	// operator is rejected with apperrors.ErrInvalidState.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// CloseShift performs the open->closed transition. settle runs once the shift is
	// confirmed open and no further drawer events can be appended to it; the closing it
	// returns is written and handed back. An error from settle aborts the close.
	// Returns apperrors.ErrInvalidState if the shift is not open and
	// apperrors.ErrNotFound if it does not exist.
	CloseShift(ctx context.Context, shiftID string, closedAt time.Time, closedBy string, settle SettleFunc) (domain.ShiftClosing, error)
}

// SettleFunc builds the closing snapshot of a shift that is about to close.
type SettleFunc func(ctx context.Context) (domain.ShiftClosing, error)

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}
