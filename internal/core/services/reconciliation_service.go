package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reconciliationService computes the cash position of a shift from its sources.
type reconciliationService struct {
	BaseService
	shiftRepo   portsrepo.ShiftReader
	saleRepo    portsrepo.SaleReader
	expenseRepo portsrepo.ExpenseReader
	eventRepo   portsrepo.ShiftEventReader
	methods     []domain.PaymentMethodID
}

// ReconciliationServiceOption is a functional option for configuring the reconciler
type ReconciliationServiceOption func(*reconciliationService)

// WithPaymentMethods seeds every breakdown with the configured tenders, in display order.
func WithPaymentMethods(methods []domain.PaymentMethodID) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.methods = append([]domain.PaymentMethodID(nil), methods...)
	}
}

// WithReconciliationClock overrides the wall clock.
func WithReconciliationClock(now func() time.Time) ReconciliationServiceOption {
	return func(s *reconciliationService) {
		s.Now = now
	}
}

// NewReconciliationService creates a new reconciler.
func NewReconciliationService(
	shiftRepo portsrepo.ShiftReader,
	saleRepo portsrepo.SaleReader,
	expenseRepo portsrepo.ExpenseReader,
	eventRepo portsrepo.ShiftEventReader,
	options ...ReconciliationServiceOption,
) portssvc.ReconcilerSvc {
	svc := &reconciliationService{
		shiftRepo:   shiftRepo,
		saleRepo:    saleRepo,
		expenseRepo: expenseRepo,
		eventRepo:   eventRepo,
		methods:     []domain.PaymentMethodID{domain.CashMethod},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconcilerSvc = (*reconciliationService)(nil)

func (s *reconciliationService) ComputeSummary(ctx context.Context, shiftID string) (*domain.ReconciliationSummary, error) {
	if err := validateID("shift", shiftID); err != nil {
		return nil, err
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load shift for reconciliation", slog.String("shift_id", shiftID))
		}
		return nil, err
	}

	sales, err := s.saleRepo.FindSalesByShiftID(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load sales for reconciliation", slog.String("shift_id", shiftID))
		return nil, err
	}
	expenses, err := s.expenseRepo.FindExpensesByShiftID(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for reconciliation", slog.String("shift_id", shiftID))
		return nil, err
	}
	events, err := s.eventRepo.FindEventsByShiftID(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load events for reconciliation", slog.String("shift_id", shiftID))
		return nil, err
	}

	summary := accounting.Reconcile(accounting.ReconciliationInput{
		ShiftID:        shift.ShiftID,
		OpeningBalance: shift.OpeningBalance,
		Sales:          sales,
		Expenses:       expenses,
		Events:         events,
		PaymentMethods: s.methods,
		Now:            s.clock(),
	})

	if extra := summary.PaymentBreakdown.Unconfigured(); len(extra) > 0 {
		s.LogWarn(ctx, "Payments use methods missing from the store profile",
			slog.String("shift_id", shiftID),
			slog.Any("methods", extra))
	}
	s.LogDebug(ctx, "Shift reconciled",
		slog.String("shift_id", shiftID),
		slog.String("expected_balance", summary.ExpectedBalance.String()),
		slog.Int("sales", summary.SaleCount))
	return &summary, nil
}

func (s *reconciliationService) Variance(counted, expected decimal.Decimal) domain.Variance {
	return domain.NewVariance(counted, expected)
}
