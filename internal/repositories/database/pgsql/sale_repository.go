package pgsql

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleReader {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleReader = (*PgxSaleRepository)(nil)

func (r *PgxSaleRepository) FindSalesByShiftID(ctx context.Context, shiftID string) ([]domain.Sale, error) {
	query := `
		SELECT s.sale_id, s.shift_id, s.total, s.created_at, p.method, p.amount
		FROM sales s
		LEFT JOIN sale_payments p ON p.sale_id = s.sale_id
		WHERE s.shift_id = $1
		ORDER BY s.created_at, s.sale_id, p.payment_id;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales for shift "+shiftID, err)
	}
	defer rows.Close()

	var sales []models.Sale
	var payments []models.SalePayment
	seen := make(map[string]bool)
	for rows.Next() {
		var s models.Sale
		var method *string
		var amount decimal.NullDecimal
		if err := rows.Scan(&s.SaleID, &s.ShiftID, &s.Total, &s.CreatedAt, &method, &amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale row for shift "+shiftID, err)
		}
		if !seen[s.SaleID] {
			seen[s.SaleID] = true
			sales = append(sales, s)
		}
		if method != nil && amount.Valid {
			payments = append(payments, models.SalePayment{SaleID: s.SaleID, Method: *method, Amount: amount.Decimal})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale rows for shift "+shiftID, err)
	}
	return mapping.ToDomainSales(sales, payments), nil
}

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseReader {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseReader = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) FindExpensesByShiftID(ctx context.Context, shiftID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, shift_id, amount, paid_from_cash_drawer, description, created_at
		FROM expenses
		WHERE shift_id = $1
		ORDER BY created_at, expense_id;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses for shift "+shiftID, err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(&m.ExpenseID, &m.ShiftID, &m.Amount, &m.PaidFromCashDrawer, &m.Description, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense row for shift "+shiftID, err)
		}
		expenses = append(expenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense rows for shift "+shiftID, err)
	}
	return mapping.ToDomainExpenseSlice(expenses), nil
}
