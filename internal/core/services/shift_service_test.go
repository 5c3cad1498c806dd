package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/core/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ShiftServiceTestSuite struct {
	suite.Suite
	shiftRepo    *MockShiftRepository
	operatorRepo *MockOperatorRepository
	reconciler   *MockReconciler
	observer     *MockObserver
	service      portssvc.ShiftSvcFacade
	now          time.Time
	operatorID   string
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.shiftRepo = new(MockShiftRepository)
	suite.operatorRepo = new(MockOperatorRepository)
	suite.reconciler = new(MockReconciler)
	suite.observer = new(MockObserver)
	suite.now = time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC)
	suite.operatorID = uuid.NewString()
	suite.service = services.NewShiftService(
		suite.shiftRepo,
		suite.operatorRepo,
		suite.reconciler,
		services.WithShiftObservers(suite.observer),
		services.WithShiftClock(func() time.Time { return suite.now }),
	)
}

func (suite *ShiftServiceTestSuite) activeOperator() *domain.Operator {
	return &domain.Operator{OperatorID: suite.operatorID, Name: "Dana", IsActive: true}
}

func (suite *ShiftServiceTestSuite) openShift(shiftID string) *domain.Shift {
	return &domain.Shift{
		ShiftID:        shiftID,
		OperatorID:     suite.operatorID,
		OpenedAt:       suite.now.Add(-8 * time.Hour),
		OpeningBalance: dec("100.00"),
		Status:         domain.ShiftOpen,
	}
}

func (suite *ShiftServiceTestSuite) scenarioSummary(shiftID string) *domain.ReconciliationSummary {
	breakdown := domain.NewPaymentBreakdown([]domain.PaymentMethodID{domain.CashMethod, "card"})
	breakdown.Add(domain.CashMethod, dec("40"))
	breakdown.Add("card", dec("25"))
	return &domain.ReconciliationSummary{
		ShiftID:          shiftID,
		OpeningBalance:   dec("100"),
		CashSales:        dec("40"),
		CashRefunds:      dec("0"),
		CashExpenses:     dec("10"),
		CashDrops:        dec("20"),
		ExpectedBalance:  dec("110"),
		PaymentBreakdown: breakdown,
		TotalSales:       dec("65"),
	}
}

// --- OpenShift ---

func (suite *ShiftServiceTestSuite) TestOpenShift_Success() {
	ctx := context.Background()

	suite.operatorRepo.On("FindOperatorByID", ctx, suite.operatorID).Return(suite.activeOperator(), nil).Once()
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return([]domain.Shift{}, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.OperatorID == suite.operatorID &&
			s.Status == domain.ShiftOpen &&
			s.OpeningBalance.Equal(dec("100")) &&
			s.Closing == nil &&
			s.ClosedAt == nil &&
			s.OpenedAt.Equal(suite.now) &&
			s.CreatedBy == suite.operatorID
	})).Return(nil).Once()
	suite.observer.On("ShiftOpened", ctx, mock.AnythingOfType("domain.Shift")).Return().Once()

	shift, err := suite.service.OpenShift(ctx, suite.operatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("100.00")})

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.NotEmpty(shift.ShiftID)
	suite.Equal(domain.ShiftOpen, shift.Status)
	suite.shiftRepo.AssertExpectations(suite.T())
	suite.operatorRepo.AssertExpectations(suite.T())
	suite.observer.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestOpenShift_AlreadyOpen() {
	ctx := context.Background()
	existing := suite.openShift(uuid.NewString())

	suite.operatorRepo.On("FindOperatorByID", ctx, suite.operatorID).Return(suite.activeOperator(), nil).Once()
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return([]domain.Shift{*existing}, nil).Once()

	shift, err := suite.service.OpenShift(ctx, suite.operatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("50")})

	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.shiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
	suite.observer.AssertNotCalled(suite.T(), "ShiftOpened", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_ValidationErrors() {
	ctx := context.Background()
	cases := map[string]dto.OpenShiftRequest{
		"missing balance":   {},
		"negative balance":  {OpeningBalance: decPtr("-1")},
		"too many decimals": {OpeningBalance: decPtr("10.005")},
		"too large":         {OpeningBalance: decPtr("100000000000000")},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			shift, err := suite.service.OpenShift(ctx, suite.operatorID, req)
			suite.Nil(shift)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}

	_, err := suite.service.OpenShift(ctx, "not-a-uuid", dto.OpenShiftRequest{OpeningBalance: decPtr("1")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.operatorRepo.AssertNotCalled(suite.T(), "FindOperatorByID", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertNotCalled(suite.T(), "SaveShift", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_OperatorNotFound() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByID", ctx, suite.operatorID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.OpenShift(ctx, suite.operatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("0")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.shiftRepo.AssertNotCalled(suite.T(), "FindOpenShiftsByOperator", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_InactiveOperator() {
	ctx := context.Background()
	op := suite.activeOperator()
	op.IsActive = false
	suite.operatorRepo.On("FindOperatorByID", ctx, suite.operatorID).Return(op, nil).Once()

	_, err := suite.service.OpenShift(ctx, suite.operatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("0")})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShiftServiceTestSuite) TestOpenShift_StorageRejectsSecondOpen() {
	ctx := context.Background()
	suite.operatorRepo.On("FindOperatorByID", ctx, suite.operatorID).Return(suite.activeOperator(), nil).Once()
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return(nil, nil).Once()
	suite.shiftRepo.On("SaveShift", ctx, mock.AnythingOfType("domain.Shift")).Return(apperrors.ErrInvalidState).Once()

	_, err := suite.service.OpenShift(ctx, suite.operatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("20")})

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.observer.AssertNotCalled(suite.T(), "ShiftOpened", mock.Anything, mock.Anything)
}

// --- FindOpenShift ---

func (suite *ShiftServiceTestSuite) TestFindOpenShift_None() {
	ctx := context.Background()
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return([]domain.Shift{}, nil).Once()

	shift, err := suite.service.FindOpenShift(ctx, suite.operatorID)

	suite.Require().NoError(err)
	suite.Nil(shift)
}

func (suite *ShiftServiceTestSuite) TestFindOpenShift_One() {
	ctx := context.Background()
	open := suite.openShift(uuid.NewString())
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return([]domain.Shift{*open}, nil).Once()

	shift, err := suite.service.FindOpenShift(ctx, suite.operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.Equal(open.ShiftID, shift.ShiftID)
}

func (suite *ShiftServiceTestSuite) TestFindOpenShift_IntegrityFault() {
	ctx := context.Background()
	a, b := suite.openShift(uuid.NewString()), suite.openShift(uuid.NewString())
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return([]domain.Shift{*a, *b}, nil).Once()

	shift, err := suite.service.FindOpenShift(ctx, suite.operatorID)

	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrIntegrity)
}

func (suite *ShiftServiceTestSuite) TestFindOpenShift_RepoError() {
	ctx := context.Background()
	suite.shiftRepo.On("FindOpenShiftsByOperator", ctx, suite.operatorID).Return(nil, assert.AnError).Once()

	_, err := suite.service.FindOpenShift(ctx, suite.operatorID)

	suite.ErrorIs(err, assert.AnError)
}

// --- CloseShift ---

func (suite *ShiftServiceTestSuite) TestCloseShift_Success() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(suite.openShift(shiftID), nil).Once()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(suite.openShift(shiftID), nil).Once()
	suite.reconciler.On("ComputeSummary", ctx, shiftID).Return(suite.scenarioSummary(shiftID), nil).Once()
	suite.shiftRepo.On("CloseShift", ctx, shiftID,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(suite.now) }),
		suite.operatorID,
	).Return(nil).Once()
	suite.observer.On("ShiftClosed", ctx, mock.MatchedBy(func(s domain.Shift) bool {
		return s.ShiftID == shiftID && s.Status == domain.ShiftClosed && s.Closing != nil
	})).Return().Once()

	shift, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("108.00"), Notes: "short two"}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(shift)
	suite.Equal(domain.ShiftClosed, shift.Status)
	suite.Require().NotNil(shift.ClosedAt)
	suite.True(shift.ClosedAt.Equal(suite.now))
	suite.Require().NotNil(shift.Closing)
	variance := shift.Closing.Variance()
	suite.True(variance.Amount.Equal(dec("-2")), "variance %s", variance.Amount)
	suite.Equal(domain.Shortage, variance.Status)
	closing := shift.Closing
	suite.True(closing.ExpectedBalance.Equal(dec("110")))
	suite.True(closing.ClosingBalance.Equal(dec("108")))
	suite.True(closing.CashDrops.Equal(dec("20")))
	suite.True(closing.TotalSales.Equal(dec("65")))
	suite.True(closing.PaymentBreakdown.Total("card").Equal(dec("25")))
	suite.Equal("short two", closing.Notes)
	suite.shiftRepo.AssertExpectations(suite.T())
	suite.reconciler.AssertExpectations(suite.T())
	suite.observer.AssertExpectations(suite.T())
}

func (suite *ShiftServiceTestSuite) TestCloseShift_AlreadyClosed() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	closed := suite.openShift(shiftID)
	closed.Status = domain.ShiftClosed

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(closed, nil).Twice()

	shift, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("1")}, suite.operatorID)

	suite.Nil(shift)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.reconciler.AssertNotCalled(suite.T(), "ComputeSummary", mock.Anything, mock.Anything)
	suite.shiftRepo.AssertNotCalled(suite.T(), "CloseShift", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.observer.AssertNotCalled(suite.T(), "ShiftClosed", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_LosesConditionalWrite() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(suite.openShift(shiftID), nil).Once()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(suite.openShift(shiftID), nil).Once()
	suite.shiftRepo.On("CloseShift", ctx, shiftID, mock.Anything, suite.operatorID).Return(apperrors.ErrInvalidState).Once()

	_, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("110")}, suite.operatorID)

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.reconciler.AssertNotCalled(suite.T(), "ComputeSummary", mock.Anything, mock.Anything)
	suite.observer.AssertNotCalled(suite.T(), "ShiftClosed", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_NotFound() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("0")}, suite.operatorID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_SummaryErrorPropagates() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	suite.shiftRepo.On("FindShiftByID", ctx, shiftID).Return(suite.openShift(shiftID), nil).Twice()
	suite.shiftRepo.On("CloseShift", ctx, shiftID, mock.Anything, suite.operatorID).Return(nil).Once()
	suite.reconciler.On("ComputeSummary", ctx, shiftID).Return(nil, assert.AnError).Once()

	_, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("0")}, suite.operatorID)

	suite.ErrorIs(err, assert.AnError)
	suite.observer.AssertNotCalled(suite.T(), "ShiftClosed", mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestCloseShift_ValidationErrors() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	_, err := suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{}, suite.operatorID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("-5")}, suite.operatorID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CloseShift(ctx, "bogus", dto.CloseShiftRequest{CountedCash: decPtr("5")}, suite.operatorID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CloseShift(ctx, shiftID, dto.CloseShiftRequest{CountedCash: decPtr("100000000000000")}, suite.operatorID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.shiftRepo.AssertNotCalled(suite.T(), "FindShiftByID", mock.Anything, mock.Anything)
}

// --- ListShifts / integrity ---

func (suite *ShiftServiceTestSuite) TestListShifts_DefaultLimit() {
	ctx := context.Background()
	next := "token"
	first := suite.openShift(uuid.NewString())
	suite.shiftRepo.On("ListShiftsByOperator", ctx, suite.operatorID, 20, (*string)(nil)).Return([]domain.Shift{*first}, &next, nil).Once()

	resp, err := suite.service.ListShifts(ctx, suite.operatorID, dto.ListShiftsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Shifts, 1)
	suite.Equal(first.ShiftID, resp.Shifts[0].ShiftID)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token", *resp.NextToken)
}

func (suite *ShiftServiceTestSuite) TestListShifts_LimitTooLarge() {
	_, err := suite.service.ListShifts(context.Background(), suite.operatorID, dto.ListShiftsParams{Limit: 500})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.shiftRepo.AssertNotCalled(suite.T(), "ListShiftsByOperator", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShiftServiceTestSuite) TestFindOperatorsWithMultipleOpenShifts() {
	ctx := context.Background()
	counts := map[string]int{suite.operatorID: 2}
	suite.shiftRepo.On("CountOpenShiftsPerOperator", ctx).Return(counts, nil).Once()

	integrity, ok := suite.service.(portssvc.IntegritySvc)
	suite.Require().True(ok)
	got, err := integrity.FindOperatorsWithMultipleOpenShifts(ctx)

	suite.Require().NoError(err)
	suite.Equal(counts, got)
}

// --- Run Test Suite ---
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
