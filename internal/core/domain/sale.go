package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one tender line of a sale. A negative amount is a refund against that method.
type Payment struct {
	Method PaymentMethodID `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// Sale is read here, never written: the checkout flow owns it.
type Sale struct {
	SaleID    string          `json:"saleID"`
	ShiftID   string          `json:"shiftID"`
	Total     decimal.Decimal `json:"total"`
	Payments  []Payment       `json:"payments"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Expense is an outgoing payment tagged to a shift. Only drawer-funded ones affect cash.
type Expense struct {
	ExpenseID          string          `json:"expenseID"`
	ShiftID            string          `json:"shiftID"`
	Amount             decimal.Decimal `json:"amount"`
	PaidFromCashDrawer bool            `json:"paidFromCashDrawer"`
	Description        string          `json:"description,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}
