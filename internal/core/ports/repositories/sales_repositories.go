package repositories

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
)

// SaleReader is the read-only view of the checkout flow's sales.
type SaleReader interface {
	// FindSalesByShiftID returns every sale tagged to the shift with its payment lines.
	FindSalesByShiftID(ctx context.Context, shiftID string) ([]domain.Sale, error)
}

// ExpenseReader is the read-only view of recorded expenses.
type ExpenseReader interface {
	// FindExpensesByShiftID returns every expense tagged to the shift.
	FindExpensesByShiftID(ctx context.Context, shiftID string) ([]domain.Expense, error)
}
