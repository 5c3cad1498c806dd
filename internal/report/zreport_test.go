package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
)

var (
	openedAt  = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	closedAt  = time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC)
	printedAt = time.Date(2024, 3, 1, 16, 5, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProfile() config.StoreProfile {
	return config.StoreProfile{
		StoreName:      "Corner Shop",
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		Precision:      2,
		Locale:         "en-US",
		PaymentMethods: []domain.PaymentMethod{
			{ID: domain.CashMethod, Label: "Cash"},
			{ID: "card", Label: "Card"},
			{ID: "wallet", Label: "Wallet"},
		},
	}
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(testProfile())
	require.NoError(t, err)
	return r
}

func TestRender_ClosedShift(t *testing.T) {
	breakdown := domain.NewPaymentBreakdown(testProfile().MethodIDs())
	breakdown.Add(domain.CashMethod, dec("40"))
	breakdown.Add("card", dec("25"))
	shift := domain.Shift{
		ShiftID:        "7d9f2c1e-0000-4000-8000-000000000001",
		OperatorID:     "op-1",
		OpenedAt:       openedAt,
		ClosedAt:       &closedAt,
		OpeningBalance: dec("100"),
		Status:         domain.ShiftClosed,
		Closing: &domain.ShiftClosing{
			ClosingBalance:   dec("108"),
			ExpectedBalance:  dec("110"),
			CashSales:        dec("40"),
			CashRefunds:      decimal.Zero,
			CashExpenses:     dec("10"),
			CashDrops:        dec("20"),
			TotalSales:       dec("65"),
			PaymentBreakdown: breakdown,
			Notes:            "Short two dollars",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Render(&buf, Input{Shift: shift, OperatorName: "Dana", PrintedAt: printedAt}))

	g := goldie.New(t)
	g.Assert(t, "closed_shift", buf.Bytes())
}

func TestRender_OpenShiftUsesLiveSummary(t *testing.T) {
	breakdown := domain.NewPaymentBreakdown(testProfile().MethodIDs())
	breakdown.Add(domain.CashMethod, dec("1234.5"))
	breakdown.Add(domain.CashMethod, dec("-34.5"))
	breakdown.Add("voucher", dec("15"))
	shift := domain.Shift{
		ShiftID:        "7d9f2c1e-0000-4000-8000-000000000002",
		OperatorID:     "op-2",
		OpenedAt:       openedAt,
		OpeningBalance: dec("50"),
		Status:         domain.ShiftOpen,
	}
	summary := &domain.ReconciliationSummary{
		ShiftID:          shift.ShiftID,
		OpeningBalance:   dec("50"),
		CashSales:        dec("1234.5"),
		CashRefunds:      dec("-34.5"),
		CashExpenses:     decimal.Zero,
		CashDrops:        dec("1000"),
		ExpectedBalance:  dec("250"),
		PaymentBreakdown: breakdown,
		TotalSales:       dec("1215"),
	}

	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Render(&buf, Input{Shift: shift, Summary: summary, PrintedAt: printedAt}))

	g := goldie.New(t)
	g.Assert(t, "open_shift", buf.Bytes())
}

func TestRender_OpenShiftWithoutSummary(t *testing.T) {
	err := newRenderer(t).Render(&bytes.Buffer{}, Input{Shift: domain.Shift{Status: domain.ShiftOpen}})

	assert.Error(t, err)
}

func TestNewRenderer_InvalidCurrency(t *testing.T) {
	profile := testProfile()
	profile.CurrencyCode = "XX"

	_, err := NewRenderer(profile)

	assert.Error(t, err)
}
