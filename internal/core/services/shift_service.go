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

const defaultShiftPageSize = 20

// shiftService owns shift identity and the open->closed lifecycle.
type shiftService struct {
	BaseService
	shiftRepo    portsrepo.ShiftRepositoryFacade
	operatorRepo portsrepo.OperatorReader
	reconciler   portssvc.ReconcilerSvc
	locks        *OperatorLocks
	observers    observerSet
	precision    int32
}

// ShiftServiceOption is a functional option for configuring the shift service
type ShiftServiceOption func(*shiftService)

// WithShiftObservers registers observers notified after each committed transition.
func WithShiftObservers(observers ...portssvc.ShiftObserver) ShiftServiceOption {
	return func(s *shiftService) {
		s.observers = append(s.observers, observers...)
	}
}

// WithShiftLocks shares an operator lock table with other writers.
func WithShiftLocks(locks *OperatorLocks) ShiftServiceOption {
	return func(s *shiftService) {
		s.locks = locks
	}
}

// WithShiftAmountPrecision sets the maximum decimal places accepted for amounts.
func WithShiftAmountPrecision(precision int32) ShiftServiceOption {
	return func(s *shiftService) {
		s.precision = precision
	}
}

// WithShiftClock overrides the wall clock.
func WithShiftClock(now func() time.Time) ShiftServiceOption {
	return func(s *shiftService) {
		s.Now = now
	}
}

// NewShiftService creates a new shift service with the provided options
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, operatorRepo portsrepo.OperatorReader, reconciler portssvc.ReconcilerSvc, options ...ShiftServiceOption) portssvc.ShiftSvcFacade {
	svc := &shiftService{
		shiftRepo:    shiftRepo,
		operatorRepo: operatorRepo,
		reconciler:   reconciler,
		precision:    2,
	}

	for _, option := range options {
		option(svc)
	}
	if svc.locks == nil {
		svc.locks = NewOperatorLocks()
	}

	return svc
}

// Ensure shiftService implements the service interfaces
var (
	_ portssvc.ShiftSvcFacade = (*shiftService)(nil)
	_ portssvc.IntegritySvc   = (*shiftService)(nil)
)

func (s *shiftService) OpenShift(ctx context.Context, operatorID string, req dto.OpenShiftRequest) (*domain.Shift, error) {
	if err := validateID("operator", operatorID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	opening := *req.OpeningBalance
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}
	if err := validateAmount("opening balance", opening, s.precision); err != nil {
		return nil, err
	}

	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load operator", slog.String("operator_id", operatorID))
		}
		return nil, err
	}
	if !operator.IsActive {
		return nil, fmt.Errorf("%w: operator %s is inactive", apperrors.ErrForbidden, operatorID)
	}

	unlock := s.locks.Lock(operatorID)
	defer unlock()

	existing, err := s.findOpenShift(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: operator %s already has open shift %s", apperrors.ErrInvalidState, operatorID, existing.ShiftID)
	}

	now := s.clock()
	shift := domain.Shift{
		ShiftID:        uuid.NewString(),
		OperatorID:     operatorID,
		OpenedAt:       now,
		OpeningBalance: opening,
		Status:         domain.ShiftOpen,
		AuditFields:    domain.NewAuditFields(operatorID, now),
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		s.LogError(ctx, err, "Failed to save shift", slog.String("operator_id", operatorID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift opened",
		slog.String("shift_id", shift.ShiftID),
		slog.String("operator_id", operatorID),
		slog.String("opening_balance", opening.String()))
	s.observers.shiftOpened(ctx, shift)
	return &shift, nil
}

func (s *shiftService) FindOpenShift(ctx context.Context, operatorID string) (*domain.Shift, error) {
	if err := validateID("operator", operatorID); err != nil {
		return nil, err
	}
	return s.findOpenShift(ctx, operatorID)
}

// findOpenShift maps the open-shift rows of an operator to none, one, or an integrity fault.
func (s *shiftService) findOpenShift(ctx context.Context, operatorID string) (*domain.Shift, error) {
	shifts, err := s.shiftRepo.FindOpenShiftsByOperator(ctx, operatorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up open shifts", slog.String("operator_id", operatorID))
		return nil, err
	}

	switch len(shifts) {
	case 0:
		return nil, nil
	case 1:
		return &shifts[0], nil
	default:
		err := fmt.Errorf("%w: operator %s has %d open shifts", apperrors.ErrIntegrity, operatorID, len(shifts))
		s.LogError(ctx, err, "More than one open shift found", slog.String("operator_id", operatorID))
		return nil, err
	}
}

func (s *shiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	if err := validateID("shift", shiftID); err != nil {
		return nil, err
	}
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load shift", slog.String("shift_id", shiftID))
		}
		return nil, err
	}
	return shift, nil
}

// ListShifts pages through operatorID's shifts. params.OperatorID is resolved by the
// caller and not read here.
func (s *shiftService) ListShifts(ctx context.Context, operatorID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	if err := validateID("operator", operatorID); err != nil {
		return nil, err
	}
	if params.Limit == 0 {
		params.Limit = defaultShiftPageSize
	}
	if err := validateRequest(params); err != nil {
		return nil, err
	}

	shifts, nextToken, err := s.shiftRepo.ListShiftsByOperator(ctx, operatorID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list shifts", slog.String("operator_id", operatorID))
		}
		return nil, err
	}

	return &dto.ListShiftsResponse{
		Shifts:    dto.ToListShiftResponse(shifts),
		NextToken: nextToken,
	}, nil
}

func (s *shiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, closingOperatorID string) (*domain.Shift, error) {
	if err := validateID("shift", shiftID); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	counted := *req.CountedCash
	if counted.IsNegative() {
		return nil, fmt.Errorf("%w: counted cash must not be negative", apperrors.ErrValidation)
	}
	if err := validateAmount("counted cash", counted, s.precision); err != nil {
		return nil, err
	}

	shift, err := s.GetShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(shift.OperatorID)
	defer unlock()

	// Re-read under the lock: a concurrent close may have won.
	shift, err = s.GetShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if !shift.IsOpen() {
		return nil, fmt.Errorf("%w: shift %s is already %s", apperrors.ErrInvalidState, shiftID, shift.Status)
	}

	// The summary is settled by the repository once no more events can land on the shift.
	closedAt := s.clock()
	closing, err := s.shiftRepo.CloseShift(ctx, shiftID, closedAt, closingOperatorID, func(ctx context.Context) (domain.ShiftClosing, error) {
		summary, err := s.reconciler.ComputeSummary(ctx, shiftID)
		if err != nil {
			return domain.ShiftClosing{}, err
		}
		return domain.NewShiftClosing(*summary, counted, req.Notes), nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Failed to close shift", slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	shift.Status = domain.ShiftClosed
	shift.ClosedAt = &closedAt
	shift.Closing = &closing
	shift.LastUpdatedAt = closedAt
	shift.LastUpdatedBy = closingOperatorID

	variance := closing.Variance()
	s.LogInfo(ctx, "Shift closed",
		slog.String("shift_id", shiftID),
		slog.String("operator_id", shift.OperatorID),
		slog.String("expected_balance", closing.ExpectedBalance.String()),
		slog.String("closing_balance", counted.String()),
		slog.String("variance", variance.Amount.String()),
		slog.String("variance_status", string(variance.Status)))
	s.observers.shiftClosed(ctx, *shift)
	return shift, nil
}

func (s *shiftService) FindOperatorsWithMultipleOpenShifts(ctx context.Context) (map[string]int, error) {
	counts, err := s.shiftRepo.CountOpenShiftsPerOperator(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count open shifts per operator")
		return nil, err
	}
	return counts, nil
}
