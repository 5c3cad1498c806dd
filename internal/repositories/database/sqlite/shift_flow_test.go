package sqlite

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/core/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "test",
		JWTExpiryDuration: time.Hour,
		Store:             config.DefaultStoreProfile(),
	}
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestShiftFlow_OpenDropCloseReconciles(t *testing.T) {
	ctx := context.Background()
	db, repos := newTestStore(t)
	op := seedOperator(t, repos)
	svc := services.NewServiceContainer(testConfig(), repos)

	shift, err := svc.Shift.OpenShift(ctx, op.OperatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("100.00")})
	require.NoError(t, err)

	seedSale(t, db, shift.ShiftID, baseTime, payment{"cash", "40.00"})
	seedSale(t, db, shift.ShiftID, baseTime, payment{"card", "25.00"})
	seedExpense(t, db, shift.ShiftID, "10.00", true, baseTime)
	seedExpense(t, db, shift.ShiftID, "7.00", false, baseTime)

	_, err = svc.Events.RecordCashDrop(ctx, shift.ShiftID, dto.CashDropRequest{Amount: decPtr("20.00")}, op.OperatorID)
	require.NoError(t, err)

	summary, err := svc.Reconciler.ComputeSummary(ctx, shift.ShiftID)
	require.NoError(t, err)
	assert.True(t, dec("110").Equal(summary.ExpectedBalance), "expected %s", summary.ExpectedBalance)

	closed, err := svc.Shift.CloseShift(ctx, shift.ShiftID, dto.CloseShiftRequest{CountedCash: decPtr("108.00")}, op.OperatorID)
	require.NoError(t, err)
	require.NotNil(t, closed.Closing)
	assert.True(t, dec("110").Equal(closed.Closing.ExpectedBalance))
	variance := closed.Closing.Variance()
	assert.True(t, dec("-2").Equal(variance.Amount))
	assert.Equal(t, domain.Shortage, variance.Status)

	stored, err := svc.Shift.GetShift(ctx, shift.ShiftID)
	require.NoError(t, err)
	assert.True(t, dec("110").Equal(stored.Closing.ExpectedBalance))
	assert.True(t, dec("25").Equal(stored.Closing.PaymentBreakdown.Total("card")))

	// the closed shift accepts nothing further
	_, err = svc.Events.RecordCashDrop(ctx, shift.ShiftID, dto.CashDropRequest{Amount: decPtr("1")}, op.OperatorID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	_, err = svc.Shift.CloseShift(ctx, shift.ShiftID, dto.CloseShiftRequest{CountedCash: decPtr("110")}, op.OperatorID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	open, err := svc.Shift.FindOpenShift(ctx, op.OperatorID)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestShiftFlow_ConcurrentClosesOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	_, repos := newTestStore(t)
	op := seedOperator(t, repos)

	// Independent containers do not share operator locks, so only storage arbitrates.
	const closers = 8
	first := services.NewServiceContainer(testConfig(), repos)
	shift, err := first.Shift.OpenShift(ctx, op.OperatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("50")})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var wins, invalid int
	for i := 0; i < closers; i++ {
		svc := services.NewServiceContainer(testConfig(), repos)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Shift.CloseShift(ctx, shift.ShiftID, dto.CloseShiftRequest{CountedCash: decPtr("50")}, op.OperatorID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, apperrors.ErrInvalidState):
				invalid++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, closers-1, invalid)
}

func TestShiftFlow_SecondOpenRejected(t *testing.T) {
	ctx := context.Background()
	_, repos := newTestStore(t)
	op := seedOperator(t, repos)
	a := services.NewServiceContainer(testConfig(), repos)
	b := services.NewServiceContainer(testConfig(), repos)

	_, err := a.Shift.OpenShift(ctx, op.OperatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("10")})
	require.NoError(t, err)
	_, err = b.Shift.OpenShift(ctx, op.OperatorID, dto.OpenShiftRequest{OpeningBalance: decPtr("10")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	dupes, err := a.Integrity.FindOperatorsWithMultipleOpenShifts(ctx)
	require.NoError(t, err)
	assert.Empty(t, dupes)
}
