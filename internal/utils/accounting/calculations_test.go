package accounting

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	card   domain.PaymentMethodID = "card"
	wallet domain.PaymentMethodID = "wallet"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func cashSale(amount string) domain.Sale {
	return domain.Sale{
		SaleID:   "sale-" + amount,
		ShiftID:  "shift-1",
		Total:    dec(amount),
		Payments: []domain.Payment{{Method: domain.CashMethod, Amount: dec(amount)}},
	}
}

func scenarioInput() ReconciliationInput {
	return ReconciliationInput{
		ShiftID:        "shift-1",
		OpeningBalance: dec("100.00"),
		Sales: []domain.Sale{
			cashSale("40.00"),
			{
				SaleID:   "sale-card",
				ShiftID:  "shift-1",
				Total:    dec("25.00"),
				Payments: []domain.Payment{{Method: card, Amount: dec("25.00")}},
			},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "exp-1", ShiftID: "shift-1", Amount: dec("10.00"), PaidFromCashDrawer: true},
		},
		Events: []domain.ShiftEvent{
			{EventID: "ev-1", ShiftID: "shift-1", Type: domain.CashDrop, Amount: dec("20.00")},
		},
		PaymentMethods: []domain.PaymentMethodID{domain.CashMethod, card},
		Now:            time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
	}
}

func TestReconcile_MixedActivity(t *testing.T) {
	summary := Reconcile(scenarioInput())

	assert.True(t, dec("40").Equal(summary.CashSales), "cash sales")
	assert.True(t, summary.CashRefunds.IsZero(), "no refunds")
	assert.True(t, dec("10").Equal(summary.CashExpenses), "cash expenses")
	assert.True(t, dec("20").Equal(summary.CashDrops), "cash drops")
	assert.True(t, dec("110").Equal(summary.ExpectedBalance), "expected balance, got %s", summary.ExpectedBalance)
	assert.True(t, dec("65").Equal(summary.TotalSales), "total sales")
	assert.True(t, dec("40").Equal(summary.PaymentBreakdown.Total(domain.CashMethod)))
	assert.True(t, dec("25").Equal(summary.PaymentBreakdown.Total(card)))
	assert.Equal(t, 2, summary.SaleCount)
	assert.Equal(t, 1, summary.ExpenseCount)
	assert.Equal(t, 1, summary.DropCount)

	assert.True(t, dec("-2").Equal(domain.NewVariance(dec("108"), summary.ExpectedBalance).Amount), "short by two")
}

func TestReconcile_RefundReducesExpected(t *testing.T) {
	in := ReconciliationInput{
		ShiftID:        "shift-2",
		OpeningBalance: dec("0"),
		Sales: []domain.Sale{
			cashSale("50.00"),
			{
				SaleID:   "refund-1",
				ShiftID:  "shift-2",
				Total:    dec("-15.00"),
				Payments: []domain.Payment{{Method: domain.CashMethod, Amount: dec("-15.00")}},
			},
		},
		PaymentMethods: []domain.PaymentMethodID{domain.CashMethod},
	}

	summary := Reconcile(in)

	assert.True(t, dec("50").Equal(summary.CashSales))
	assert.True(t, dec("-15").Equal(summary.CashRefunds))
	assert.True(t, dec("35").Equal(summary.ExpectedBalance), "got %s", summary.ExpectedBalance)
	assert.True(t, dec("35").Equal(summary.PaymentBreakdown.Total(domain.CashMethod)))
}

func TestReconcile_ZeroActivity(t *testing.T) {
	summary := Reconcile(ReconciliationInput{
		ShiftID:        "shift-3",
		OpeningBalance: dec("75.50"),
		PaymentMethods: []domain.PaymentMethodID{domain.CashMethod, card},
	})

	assert.True(t, dec("75.50").Equal(summary.ExpectedBalance))
	assert.True(t, summary.TotalSales.IsZero())
	assert.Equal(t, 2, summary.PaymentBreakdown.Len(), "configured methods are always present")
	for _, e := range summary.PaymentBreakdown.Entries() {
		assert.True(t, e.Total.IsZero(), "method %s", e.Method)
	}
}

func TestReconcile_IgnoresNonDrawerExpensesAndUnknownEvents(t *testing.T) {
	in := ReconciliationInput{
		ShiftID:        "shift-4",
		OpeningBalance: dec("10"),
		Expenses: []domain.Expense{
			{ExpenseID: "e1", Amount: dec("99"), PaidFromCashDrawer: false},
			{ExpenseID: "e2", Amount: dec("1"), PaidFromCashDrawer: true},
		},
		Events: []domain.ShiftEvent{
			{EventID: "ev1", Type: domain.ShiftEventType("float_top_up"), Amount: dec("500")},
			{EventID: "ev2", Type: domain.CashDrop, Amount: dec("2")},
		},
	}

	summary := Reconcile(in)

	assert.True(t, dec("7").Equal(summary.ExpectedBalance), "got %s", summary.ExpectedBalance)
	assert.Equal(t, 1, summary.ExpenseCount)
	assert.Equal(t, 1, summary.DropCount)
}

func TestReconcile_SplitTenderOnlyCashMovesDrawer(t *testing.T) {
	in := ReconciliationInput{
		ShiftID:        "shift-5",
		OpeningBalance: dec("20"),
		Sales: []domain.Sale{{
			SaleID: "split",
			Total:  dec("30"),
			Payments: []domain.Payment{
				{Method: domain.CashMethod, Amount: dec("12.50")},
				{Method: card, Amount: dec("17.50")},
			},
		}},
		PaymentMethods: []domain.PaymentMethodID{domain.CashMethod, card},
	}

	summary := Reconcile(in)

	assert.True(t, dec("32.50").Equal(summary.ExpectedBalance))
	assert.True(t, dec("17.50").Equal(summary.PaymentBreakdown.Total(card)))
	assert.True(t, dec("30").Equal(summary.TotalSales))
}

func TestReconcile_OrderIndependent(t *testing.T) {
	base := scenarioInput()
	base.Sales = append(base.Sales,
		cashSale("3.10"),
		domain.Sale{SaleID: "w", Total: dec("8"), Payments: []domain.Payment{{Method: wallet, Amount: dec("8")}}},
		domain.Sale{SaleID: "r", Total: dec("-1.05"), Payments: []domain.Payment{{Method: domain.CashMethod, Amount: dec("-1.05")}}},
	)
	base.Events = append(base.Events, domain.ShiftEvent{EventID: "ev-2", Type: domain.CashDrop, Amount: dec("5.25")})
	want := Reconcile(base)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		in := base
		in.Sales = append([]domain.Sale(nil), base.Sales...)
		in.Expenses = append([]domain.Expense(nil), base.Expenses...)
		in.Events = append([]domain.ShiftEvent(nil), base.Events...)
		rng.Shuffle(len(in.Sales), func(a, b int) { in.Sales[a], in.Sales[b] = in.Sales[b], in.Sales[a] })
		rng.Shuffle(len(in.Events), func(a, b int) { in.Events[a], in.Events[b] = in.Events[b], in.Events[a] })

		got := Reconcile(in)

		require.True(t, want.ExpectedBalance.Equal(got.ExpectedBalance), "iteration %d", i)
		require.True(t, want.TotalSales.Equal(got.TotalSales), "iteration %d", i)
		wantEntries, gotEntries := want.PaymentBreakdown.Entries(), got.PaymentBreakdown.Entries()
		require.Len(t, gotEntries, len(wantEntries))
		for j := range wantEntries {
			require.Equal(t, wantEntries[j].Method, gotEntries[j].Method, "iteration %d", i)
			require.True(t, wantEntries[j].Total.Equal(gotEntries[j].Total), "iteration %d", i)
		}
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	in := scenarioInput()
	first := Reconcile(in)
	second := Reconcile(in)

	assert.True(t, first.ExpectedBalance.Equal(second.ExpectedBalance))
	assert.True(t, first.CashSales.Equal(second.CashSales))
	assert.Equal(t, first.PaymentBreakdown.Entries(), second.PaymentBreakdown.Entries())
}

func TestVarianceOfSummary(t *testing.T) {
	for _, v := range []string{"0", "110", "-3.25", "1000000.01"} {
		variance := domain.NewVariance(dec(v), dec(v))
		assert.True(t, variance.Amount.IsZero(), "variance(%s,%s)", v, v)
		assert.Equal(t, domain.Balanced, variance.Status)
	}
	assert.True(t, dec("1.5").Equal(domain.NewVariance(dec("11.5"), dec("10")).Amount))
}

func TestFitsPrecision(t *testing.T) {
	assert.True(t, FitsPrecision(dec("10.25"), 2))
	assert.True(t, FitsPrecision(dec("10"), 2))
	assert.False(t, FitsPrecision(dec("10.255"), 2))
	assert.True(t, FitsPrecision(dec("500"), 0))
	assert.False(t, FitsPrecision(dec("0.5"), 0))
}
