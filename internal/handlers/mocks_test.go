package handlers_test

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

func (m *MockShiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) FindOpenShift(ctx context.Context, operatorID string) (*domain.Shift, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) ListShifts(ctx context.Context, operatorID string, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	args := m.Called(ctx, operatorID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListShiftsResponse), args.Error(1)
}
func (m *MockShiftService) OpenShift(ctx context.Context, operatorID string, req dto.OpenShiftRequest) (*domain.Shift, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}
func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, closingOperatorID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID, req, closingOperatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

// --- Mock ShiftEventService ---
type MockShiftEventService struct {
	mock.Mock
}

func (m *MockShiftEventService) RecordCashDrop(ctx context.Context, shiftID string, req dto.CashDropRequest, operatorID string) (*domain.ShiftEvent, error) {
	args := m.Called(ctx, shiftID, req, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftEvent), args.Error(1)
}
func (m *MockShiftEventService) ListShiftEvents(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftEvent), args.Error(1)
}

var _ portssvc.ShiftEventSvc = (*MockShiftEventService)(nil)

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
	args := m.Called(counted, expected)
	return args.Get(0).(domain.Variance)
}

var _ portssvc.ReconcilerSvc = (*MockReconciler)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

var _ portssvc.AuthSvc = (*MockAuthService)(nil)

// --- Mock OperatorService ---
type MockOperatorService struct {
	mock.Mock
}

func (m *MockOperatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}
func (m *MockOperatorService) GetOperator(ctx context.Context, operatorID string) (*domain.Operator, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

var _ portssvc.OperatorSvc = (*MockOperatorService)(nil)

// --- Mock Pinger ---
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
