package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates where a shift is in its lifecycle.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed" // terminal
)

// Shift is one operator's cash-drawer session.
type Shift struct {
	ShiftID        string          `json:"shiftID"`    // Primary Key (UUID)
	OperatorID     string          `json:"operatorID"` // FK -> operators.operator_id
	OpenedAt       time.Time       `json:"openedAt"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Cash counted into the drawer at start
	Status         ShiftStatus     `json:"status"`
	// Closing is nil while the shift is open and fully populated once it is closed.
	Closing *ShiftClosing `json:"closing,omitempty"`
	AuditFields
}

// ShiftClosing holds every field written by the open->closed transition.
type ShiftClosing struct {
	ClosingBalance   decimal.Decimal  `json:"closingBalance"` // Operator-counted cash
	ExpectedBalance  decimal.Decimal  `json:"expectedBalance"`
	CashSales        decimal.Decimal  `json:"cashSales"`
	CashRefunds      decimal.Decimal  `json:"cashRefunds"` // Naturally negative
	CashExpenses     decimal.Decimal  `json:"cashExpenses"`
	CashDrops        decimal.Decimal  `json:"cashDrops"`
	PaymentBreakdown PaymentBreakdown `json:"paymentBreakdown"`
	TotalSales       decimal.Decimal  `json:"totalSales"`
	Notes            string           `json:"notes"`
}

// IsOpen reports whether the shift still accepts drawer activity.
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftOpen
}

// NewShiftClosing builds the closing record from a reconciliation summary and the counted cash.
func NewShiftClosing(summary ReconciliationSummary, countedCash decimal.Decimal, notes string) ShiftClosing {
	return ShiftClosing{
		ClosingBalance:   countedCash,
		ExpectedBalance:  summary.ExpectedBalance,
		CashSales:        summary.CashSales,
		CashRefunds:      summary.CashRefunds,
		CashExpenses:     summary.CashExpenses,
		CashDrops:        summary.CashDrops,
		PaymentBreakdown: summary.PaymentBreakdown,
		TotalSales:       summary.TotalSales,
		Notes:            notes,
	}
}

// Variance returns counted minus expected for a closed shift.
func (c ShiftClosing) Variance() Variance {
	return NewVariance(c.ClosingBalance, c.ExpectedBalance)
}
