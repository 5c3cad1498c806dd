package accounting

import (
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconciliationInput is everything the drawer fold needs for one shift.
type ReconciliationInput struct {
	ShiftID        string
	OpeningBalance decimal.Decimal
	Sales          []domain.Sale
	Expenses       []domain.Expense
	Events         []domain.ShiftEvent
	// PaymentMethods seeds the breakdown key set, in display order.
	PaymentMethods []domain.PaymentMethodID
	Now            time.Time
}

// Reconcile folds sales, expenses and drawer events into a summary.
//
//	expected = opening + cashSales + cashRefunds - cashExpenses - cashDrops
//
// Refunds are negative payments, so a single pass over payments covers both.
// Every step is an addition, which makes the result independent of input order.
func Reconcile(in ReconciliationInput) domain.ReconciliationSummary {
	summary := domain.ReconciliationSummary{
		ShiftID:          in.ShiftID,
		OpeningBalance:   in.OpeningBalance,
		CashSales:        decimal.Zero,
		CashRefunds:      decimal.Zero,
		CashExpenses:     decimal.Zero,
		CashDrops:        decimal.Zero,
		TotalSales:       decimal.Zero,
		PaymentBreakdown: domain.NewPaymentBreakdown(in.PaymentMethods),
		ComputedAt:       in.Now,
	}

	for _, sale := range in.Sales {
		summary.SaleCount++
		summary.TotalSales = summary.TotalSales.Add(sale.Total)
		for _, p := range sale.Payments {
			summary.PaymentBreakdown.Add(p.Method, p.Amount)
			if p.Method != domain.CashMethod {
				continue
			}
			switch p.Amount.Sign() {
			case 1:
				summary.CashSales = summary.CashSales.Add(p.Amount)
			case -1:
				summary.CashRefunds = summary.CashRefunds.Add(p.Amount)
			}
		}
	}

	for _, exp := range in.Expenses {
		if !exp.PaidFromCashDrawer {
			continue
		}
		summary.ExpenseCount++
		summary.CashExpenses = summary.CashExpenses.Add(exp.Amount)
	}

	for _, ev := range in.Events {
		if ev.Type != domain.CashDrop {
			continue
		}
		summary.DropCount++
		summary.CashDrops = summary.CashDrops.Add(ev.Amount)
	}

	summary.ExpectedBalance = ExpectedBalance(in.OpeningBalance, summary.CashSales, summary.CashRefunds, summary.CashExpenses, summary.CashDrops)
	return summary
}

// ExpectedBalance applies the drawer formula to already-aggregated figures.
func ExpectedBalance(opening, cashSales, cashRefunds, cashExpenses, cashDrops decimal.Decimal) decimal.Decimal {
	return opening.Add(cashSales).Add(cashRefunds).Sub(cashExpenses).Sub(cashDrops)
}

// FitsPrecision reports whether amount has no more fractional digits than precision.
func FitsPrecision(amount decimal.Decimal, precision int32) bool {
	return amount.Round(precision).Equal(amount)
}
