package sqlite

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
)

type SaleRepository struct {
	BaseRepository
}

var _ portsrepo.SaleReader = (*SaleRepository)(nil)

func (r *SaleRepository) FindSalesByShiftID(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	query := `
		SELECT s.sale_id, s.shift_id, s.total, s.created_at, p.method, p.amount
		FROM sales s
		LEFT JOIN sale_payments p ON p.sale_id = s.sale_id
		WHERE s.shift_id = ?
		ORDER BY s.created_at, s.sale_id, p.payment_id;
	`
	rows, err := r.DB.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, storageError("failed to query sales for shift "+shiftID, err)
	}
	defer rows.Close()

	var sales []models.Sale
	var payments []models.SalePayment
	seen := make(map[string]bool)
	for rows.Next() {
		var s models.Sale
		var createdAt string
		var method sql.NullString
		var amount decimal.NullDecimal
		if err := rows.Scan(&s.SaleID, &s.ShiftID, &s.Total, &createdAt, &method, &amount); err != nil {
			return nil, storageError("failed to scan sale row for shift "+shiftID, err)
		}
		if !seen[s.SaleID] {
			if s.CreatedAt, err = parseTime(createdAt); err != nil {
				return nil, storageError("failed to scan sale row for shift "+shiftID, err)
			}
			seen[s.SaleID] = true
			sales = append(sales, s)
		}
		if method.Valid && amount.Valid {
			payments = append(payments, models.SalePayment{SaleID: s.SaleID, Method: method.String, Amount: amount.Decimal})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating sale rows for shift "+shiftID, err)
	}
	return mapping.ToDomainSales(sales, payments), nil
}

type ExpenseRepository struct {
	BaseRepository
}

var _ portsrepo.ExpenseReader = (*ExpenseRepository)(nil)

func (r *ExpenseRepository) FindExpensesByShiftID(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, shift_id, amount, paid_from_cash_drawer, description, created_at
		FROM expenses
		WHERE shift_id = ?
		ORDER BY created_at, expense_id;
	`
	rows, err := r.DB.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, storageError("failed to query expenses for shift "+shiftID, err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var m models.Expense
		var createdAt string
		if err := rows.Scan(&m.ExpenseID, &m.ShiftID, &m.Amount, &m.PaidFromCashDrawer, &m.Description, &createdAt); err != nil {
			return nil, storageError("failed to scan expense row for shift "+shiftID, err)
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, storageError("failed to scan expense row for shift "+shiftID, err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating expense rows for shift "+shiftID, err)
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}
