package mapping

import (
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/models"
)

// ToDomainSales joins sale rows with their payment rows. Sales keep the order of
// the input; payments keep their order within a sale.
func ToDomainSales(sales []models.Sale, payments []models.SalePayment) []domain.Sale {
	bySale := make(map[string][]domain.Payment, len(sales))
	for _, p := range payments {
		bySale[p.SaleID] = append(bySale[p.SaleID], domain.Payment{
			Method: domain.PaymentMethodID(p.Method),
			Amount: p.Amount,
		})
	}
	ds := make([]domain.Sale, len(sales))
	for i, s := range sales {
		ds[i] = domain.Sale{
			SaleID:    s.SaleID,
			ShiftID:   s.ShiftID,
			Total:     s.Total,
			Payments:  bySale[s.SaleID],
			CreatedAt: s.CreatedAt,
		}
	}
	return ds
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:          m.ExpenseID,
		ShiftID:            m.ShiftID,
		Amount:             m.Amount,
		PaidFromCashDrawer: m.PaidFromCashDrawer,
		CreatedAt:          m.CreatedAt,
	}
	if m.Description != nil {
		d.Description = *m.Description
	}
	return d
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
