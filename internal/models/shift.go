package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift mirrors a row of the shifts table. Closing columns are NULL while the shift is open.
type Shift struct {
	ShiftID          string              `db:"shift_id"`
	OperatorID       string              `db:"operator_id"`
	OpenedAt         time.Time           `db:"opened_at"`
	ClosedAt         *time.Time          `db:"closed_at"`
	OpeningBalance   decimal.Decimal     `db:"opening_balance"`
	Status           string              `db:"status"`
	ClosingBalance   decimal.NullDecimal `db:"closing_balance"`
	ExpectedBalance  decimal.NullDecimal `db:"expected_balance"`
	CashSales        decimal.NullDecimal `db:"cash_sales"`
	CashRefunds      decimal.NullDecimal `db:"cash_refunds"`
	CashExpenses     decimal.NullDecimal `db:"cash_expenses"`
	CashDrops        decimal.NullDecimal `db:"cash_drops"`
	TotalSales       decimal.NullDecimal `db:"total_sales"`
	PaymentBreakdown []byte              `db:"payment_breakdown"` // JSON array, NULL while open
	Notes            *string             `db:"notes"`
	AuditFields
}
