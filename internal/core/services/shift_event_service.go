package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// shiftEventService is the append-only log of drawer events.
type shiftEventService struct {
	BaseService
	shiftRepo portsrepo.ShiftReader
	eventRepo portsrepo.ShiftEventRepositoryFacade
	locks     *OperatorLocks
	observers observerSet
	precision int32
}

// ShiftEventServiceOption is a functional option for configuring the event service
type ShiftEventServiceOption func(*shiftEventService)

// WithEventObservers registers observers notified after an event is appended.
func WithEventObservers(observers ...portssvc.ShiftObserver) ShiftEventServiceOption {
	return func(s *shiftEventService) {
		s.observers = append(s.observers, observers...)
	}
}

// WithEventLocks shares an operator lock table with the shift service.
func WithEventLocks(locks *OperatorLocks) ShiftEventServiceOption {
	return func(s *shiftEventService) {
		s.locks = locks
	}
}

// WithEventAmountPrecision sets the maximum decimal places accepted for amounts.
func WithEventAmountPrecision(precision int32) ShiftEventServiceOption {
	return func(s *shiftEventService) {
		s.precision = precision
	}
}

// WithEventClock overrides the wall clock.
func WithEventClock(now func() time.Time) ShiftEventServiceOption {
	return func(s *shiftEventService) {
		s.Now = now
	}
}

// NewShiftEventService creates a new event log service with the provided options
func NewShiftEventService(shiftRepo portsrepo.ShiftReader, eventRepo portsrepo.ShiftEventRepositoryFacade, options ...ShiftEventServiceOption) portssvc.ShiftEventSvc {
	svc := &shiftEventService{
		shiftRepo: shiftRepo,
		eventRepo: eventRepo,
		precision: 2,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.locks == nil {
		svc.locks = NewOperatorLocks()
	}
	return svc
}

var _ portssvc.ShiftEventSvc = (*shiftEventService)(nil)

func (s *shiftEventService) RecordCashDrop(ctx context.Context, shiftID string, req dto.CashDropRequest, operatorID string) (*domain.ShiftEvent, error) {
	if err := validateID("shift", shiftID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	amount := *req.Amount
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: cash drop amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if err := validateAmount("cash drop amount", amount, s.precision); err != nil {
		return nil, err
	}

	shift, err := s.loadShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(shift.OperatorID)
	defer unlock()

	if shift, err = s.loadShift(ctx, shiftID); err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: cannot record a cash drop on %s shift %s", apperrors.ErrInvalidState, shift.Status, shiftID)
	}

	event := domain.ShiftEvent{
		EventID:    uuid.NewString(),
		ShiftID:    shiftID,
		Type:       domain.CashDrop,
		Amount:     amount,
		Notes:      req.Notes,
		OccurredAt: s.clock(),
		CreatedBy:  operatorID,
	}

	if err := s.eventRepo.AppendEvent(ctx, event); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to append cash drop", slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Cash drop recorded",
		slog.String("shift_id", shiftID),
		slog.String("event_id", event.EventID),
		slog.String("amount", amount.String()))
	s.observers.cashDropRecorded(ctx, *shift, event)
	return &event, nil
}

func (s *shiftEventService) ListShiftEvents(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error) {
	if err := validateID("shift", shiftID); err != nil {
		return nil, err
	}
	if _, err := s.loadShift(ctx, shiftID); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.FindEventsByShiftID(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shift events", slog.String("shift_id", shiftID))
		return nil, err
	}
	return events, nil
}

func (s *shiftEventService) loadShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load shift", slog.String("shift_id", shiftID))
		}
		return nil, err
	}
	return shift, nil
}
