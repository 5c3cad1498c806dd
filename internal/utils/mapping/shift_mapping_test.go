package mapping

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/models"
)

func TestToModelShift_OpenShiftLeavesClosingNull(t *testing.T) {
	m, err := ToModelShift(domain.Shift{
		ShiftID:        "s-1",
		OperatorID:     "op-1",
		OpenedAt:       time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		OpeningBalance: decimal.RequireFromString("100"),
		Status:         domain.ShiftOpen,
	})

	require.NoError(t, err)
	assert.False(t, m.ClosingBalance.Valid)
	assert.False(t, m.ExpectedBalance.Valid)
	assert.Nil(t, m.PaymentBreakdown)
	assert.Nil(t, m.Notes)
	assert.Nil(t, m.ClosedAt)
}

func TestShiftMapping_ClosedShiftRoundTrip(t *testing.T) {
	closedAt := time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC)
	breakdown := domain.NewPaymentBreakdown([]domain.PaymentMethodID{"cash", "card"})
	breakdown.Add("cash", decimal.RequireFromString("15"))
	breakdown.Add("card", decimal.RequireFromString("40"))
	in := domain.Shift{
		ShiftID:        "s-1",
		OperatorID:     "op-1",
		OpeningBalance: decimal.RequireFromString("100"),
		Status:         domain.ShiftClosed,
		ClosedAt:       &closedAt,
		Closing: &domain.ShiftClosing{
			ClosingBalance:   decimal.RequireFromString("108"),
			ExpectedBalance:  decimal.RequireFromString("110"),
			CashSales:        decimal.RequireFromString("50"),
			CashRefunds:      decimal.RequireFromString("-5"),
			CashExpenses:     decimal.RequireFromString("15"),
			CashDrops:        decimal.RequireFromString("20"),
			TotalSales:       decimal.RequireFromString("55"),
			PaymentBreakdown: breakdown,
			Notes:            "short two",
		},
	}

	m, err := ToModelShift(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"method":"cash","total":"15"},{"method":"card","total":"40"}]`, string(m.PaymentBreakdown))

	out, err := ToDomainShift(m)
	require.NoError(t, err)
	require.NotNil(t, out.Closing)
	assert.True(t, out.Closing.ExpectedBalance.Equal(in.Closing.ExpectedBalance))
	assert.True(t, out.Closing.PaymentBreakdown.Total("card").Equal(decimal.RequireFromString("40")))
	assert.Equal(t, "short two", out.Closing.Notes)
	assert.Equal(t, domain.Shortage, out.Closing.Variance().Status)
}

func TestToDomainShift_ClosedRowMissingColumns(t *testing.T) {
	closedAt := time.Now().UTC()
	_, err := ToDomainShift(models.Shift{ShiftID: "s-1", Status: "closed", ClosedAt: &closedAt})

	assert.ErrorIs(t, err, apperrors.ErrIntegrity)
}

func TestToDomainSales_GroupsPayments(t *testing.T) {
	sales := []models.Sale{
		{SaleID: "a", ShiftID: "s", Total: decimal.RequireFromString("30")},
		{SaleID: "b", ShiftID: "s", Total: decimal.RequireFromString("10")},
	}
	payments := []models.SalePayment{
		{SaleID: "a", Method: "cash", Amount: decimal.RequireFromString("10")},
		{SaleID: "b", Method: "card", Amount: decimal.RequireFromString("10")},
		{SaleID: "a", Method: "card", Amount: decimal.RequireFromString("20")},
	}

	got := ToDomainSales(sales, payments)

	require.Len(t, got, 2)
	require.Len(t, got[0].Payments, 2)
	assert.Equal(t, domain.PaymentMethodID("cash"), got[0].Payments[0].Method)
	assert.Equal(t, domain.PaymentMethodID("card"), got[0].Payments[1].Method)
	require.Len(t, got[1].Payments, 1)
}
