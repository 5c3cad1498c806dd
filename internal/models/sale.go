package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale mirrors a row of the sales table.
type Sale struct {
	SaleID    string          `db:"sale_id"`
	ShiftID   string          `db:"shift_id"`
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
}

// SalePayment mirrors a row of the sale_payments table.
type SalePayment struct {
	SaleID string          `db:"sale_id"`
	Method string          `db:"method"`
	Amount decimal.Decimal `db:"amount"`
}

// Expense mirrors a row of the expenses table.
type Expense struct {
	ExpenseID          string          `db:"expense_id"`
	ShiftID            string          `db:"shift_id"`
	Amount             decimal.Decimal `db:"amount"`
	PaidFromCashDrawer bool            `db:"paid_from_cash_drawer"`
	Description        *string         `db:"description"`
	CreatedAt          time.Time       `db:"created_at"`
}
