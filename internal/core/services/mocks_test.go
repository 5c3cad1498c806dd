package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindOpenShiftsByOperator(ctx context.Context, operatorID string) ([]domain.Shift, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, operatorID, limit, nextToken)
	var shifts []domain.Shift
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.Shift)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return shifts, next, args.Error(2)
}

func (m *MockShiftRepository) CountOpenShiftsPerOperator(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

// CloseShift settles only when the stubbed call succeeds, the way a repository that
// found the shift open would.
func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID string, closedAt time.Time, closedBy string, settle portsrepo.SettleFunc) (domain.ShiftClosing, error) {
	args := m.Called(ctx, shiftID, closedAt, closedBy)
	if err := args.Error(0); err != nil {
		return domain.ShiftClosing{}, err
	}
	return settle(ctx)
}

// --- Mock ShiftEventRepository ---
type MockShiftEventRepository struct {
	mock.Mock
}

func (m *MockShiftEventRepository) FindEventsByShiftID(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftEvent), args.Error(1)
}

func (m *MockShiftEventRepository) AppendEvent(ctx context.Context, event domain.ShiftEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Mock Sale/Expense readers ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSalesByShiftID(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpensesByShiftID(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock OperatorRepository ---
type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	args := m.Called(ctx, operator)
	return args.Error(0)
}

// --- Mock Reconciler ---
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) ComputeSummary(ctx context.Context, shiftID string) (*domain.ReconciliationSummary, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSummary), args.Error(1)
}

func (m *MockReconciler) Variance(counted, expected decimal.Decimal) domain.Variance {
	return domain.NewVariance(counted, expected)
}

// --- Mock ShiftObserver ---
type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) ShiftOpened(ctx context.Context, shift domain.Shift) {
	m.Called(ctx, shift)
}

func (m *MockObserver) CashDropRecorded(ctx context.Context, shift domain.Shift, event domain.ShiftEvent) {
	m.Called(ctx, shift, event)
}

func (m *MockObserver) ShiftClosed(ctx context.Context, shift domain.Shift) {
	m.Called(ctx, shift)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
