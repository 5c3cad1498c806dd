package repositories

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
)

// ShiftEventReader defines read operations for shift events
type ShiftEventReader interface {
	// FindEventsByShiftID returns all events of a shift in the order they were recorded.
	FindEventsByShiftID(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error)
}

// ShiftEventWriter defines the single write operation of the append-only event log.
type ShiftEventWriter interface {
	// AppendEvent inserts the event only if its shift is still open, otherwise it
	// returns apperrors.ErrInvalidState (or apperrors.ErrNotFound for an unknown shift).
	AppendEvent(ctx context.Context, event domain.ShiftEvent) error
}

// ShiftEventRepositoryFacade combines all shift event repository interfaces
type ShiftEventRepositoryFacade interface {
	ShiftEventReader
	ShiftEventWriter
}
