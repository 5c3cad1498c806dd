package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/pkg/database"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestStore(t *testing.T) (*sql.DB, portsrepo.RepositoryProvider) {
	t.Helper()
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, ApplySchema(ctx, db))
	return db, NewRepositoryProvider(db)
}

func seedOperator(t *testing.T, repos portsrepo.RepositoryProvider) domain.Operator {
	t.Helper()
	op := domain.Operator{
		OperatorID:  uuid.NewString(),
		Name:        "Dana",
		PINHash:     "hash",
		Permissions: []domain.Permission{domain.PermShiftOpen, domain.PermShiftView},
		IsActive:    true,
		AuditFields: domain.NewAuditFields("seed", baseTime),
	}
	require.NoError(t, repos.OperatorRepo.SaveOperator(context.Background(), op))
	return op
}

func openShift(operatorID string, openedAt time.Time, opening string) domain.Shift {
	return domain.Shift{
		ShiftID:        uuid.NewString(),
		OperatorID:     operatorID,
		OpenedAt:       openedAt,
		OpeningBalance: dec(opening),
		Status:         domain.ShiftOpen,
		AuditFields:    domain.NewAuditFields(operatorID, openedAt),
	}
}

func closingFor(expected, counted string) domain.ShiftClosing {
	breakdown := domain.NewPaymentBreakdown([]domain.PaymentMethodID{domain.CashMethod})
	return domain.ShiftClosing{
		ClosingBalance:   dec(counted),
		ExpectedBalance:  dec(expected),
		CashSales:        decimal.Zero,
		CashRefunds:      decimal.Zero,
		CashExpenses:     decimal.Zero,
		CashDrops:        decimal.Zero,
		TotalSales:       decimal.Zero,
		PaymentBreakdown: breakdown,
	}
}

// settleWith returns a settle callback that yields a fixed closing.
func settleWith(closing domain.ShiftClosing) portsrepo.SettleFunc {
	return func(context.Context) (domain.ShiftClosing, error) { return closing, nil }
}

// closeWith closes a shift with a precomputed closing.
func closeWith(ctx context.Context, repo portsrepo.ShiftWriter, shiftID string, closing domain.ShiftClosing, closedAt time.Time, closedBy string) error {
	_, err := repo.CloseShift(ctx, shiftID, closedAt, closedBy, settleWith(closing))
	return err
}

type payment struct {
	method string
	amount string
}

// seedSale writes a sale the way the checkout flow would.
func seedSale(t *testing.T, db *sql.DB, shiftID string, at time.Time, payments ...payment) string {
	t.Helper()
	ctx := context.Background()
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(dec(p.amount))
	}
	saleID := uuid.NewString()
	_, err := db.ExecContext(ctx, `INSERT INTO sales (sale_id, shift_id, total, created_at) VALUES (?, ?, ?, ?)`,
		saleID, shiftID, total.String(), formatTime(at))
	require.NoError(t, err)
	for _, p := range payments {
		_, err := db.ExecContext(ctx, `INSERT INTO sale_payments (sale_id, method, amount) VALUES (?, ?, ?)`,
			saleID, p.method, p.amount)
		require.NoError(t, err)
	}
	return saleID
}

func seedExpense(t *testing.T, db *sql.DB, shiftID, amount string, fromDrawer bool, at time.Time) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO expenses (expense_id, shift_id, amount, paid_from_cash_drawer, description, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), shiftID, amount, fromDrawer, "supplies", formatTime(at))
	require.NoError(t, err)
}
