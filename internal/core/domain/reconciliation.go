package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationSummary is the derived cash position of a shift. It is recomputed from
// scratch on every request and never maintained incrementally.
type ReconciliationSummary struct {
	ShiftID          string           `json:"shiftID"`
	OpeningBalance   decimal.Decimal  `json:"openingBalance"`
	CashSales        decimal.Decimal  `json:"cashSales"`
	CashRefunds      decimal.Decimal  `json:"cashRefunds"`
	CashExpenses     decimal.Decimal  `json:"cashExpenses"`
	CashDrops        decimal.Decimal  `json:"cashDrops"`
	ExpectedBalance  decimal.Decimal  `json:"expectedBalance"`
	PaymentBreakdown PaymentBreakdown `json:"paymentBreakdown"`
	TotalSales       decimal.Decimal  `json:"totalSales"`
	SaleCount        int              `json:"saleCount"`
	ExpenseCount     int              `json:"expenseCount"` // drawer-funded only
	DropCount        int              `json:"dropCount"`
	ComputedAt       time.Time        `json:"computedAt"`
}

// VarianceStatus labels the sign of a variance.
type VarianceStatus string

const (
	Balanced VarianceStatus = "balanced"
	Overage  VarianceStatus = "overage"
	Shortage VarianceStatus = "shortage"
)

// Variance is counted cash minus expected balance. Presentation only, never persisted.
type Variance struct {
	Amount decimal.Decimal `json:"amount"`
	Status VarianceStatus  `json:"status"`
}

// NewVariance computes counted - expected and classifies it.
func NewVariance(counted, expected decimal.Decimal) Variance {
	amount := counted.Sub(expected)
	status := Balanced
	switch amount.Sign() {
	case 1:
		status = Overage
	case -1:
		status = Shortage
	}
	return Variance{Amount: amount, Status: status}
}
