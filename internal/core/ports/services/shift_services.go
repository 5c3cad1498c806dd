package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShift retrieves a shift by its ID.
	GetShift(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShift returns the operator's open shift, or nil when there is none.
	// More than one open shift yields apperrors.ErrIntegrity.
	FindOpenShift(ctx context.Context, operatorID string) (*domain.Shift, error)

	// ListShifts retrieves a page of the operator's shift history, newest first.
	ListShifts(ctx context.Context, operatorID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error)
}

// ShiftWriterSvc defines the lifecycle transitions of a shift
type ShiftWriterSvc interface {
	// OpenShift starts a new shift for the operator.
	OpenShift(ctx context.Context, operatorID string, req dto.OpenShiftRequest) (*domain.Shift, error)

	// CloseShift reconciles the shift against the counted cash and performs the
	// open->closed transition.
	CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, closingOperatorID string) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}

// ShiftObserver is notified after a shift transition has been committed.
// Implementations must not block and must not fail the transition.
type ShiftObserver interface {
	ShiftOpened(ctx context.Context, shift domain.Shift)
	CashDropRecorded(ctx context.Context, shift domain.Shift, event domain.ShiftEvent)
	ShiftClosed(ctx context.Context, shift domain.Shift)
}
