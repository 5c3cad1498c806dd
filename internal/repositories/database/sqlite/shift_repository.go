package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
	"github.com/SscSPs/pos_shift_app/internal/utils/pagination"
)

const shiftColumns = `
	shift_id, operator_id, opened_at, closed_at, opening_balance, status,
	closing_balance, expected_balance, cash_sales, cash_refunds, cash_expenses,
	cash_drops, total_sales, payment_breakdown, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type ShiftRepository struct {
	BaseRepository
}

// Ensure ShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*ShiftRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShift(row rowScanner) (models.Shift, error) {
	var m models.Shift
	var openedAt, createdAt, updatedAt string
	var closedAt, breakdown sql.NullString
	err := row.Scan(
		&m.ShiftID,
		&m.OperatorID,
		&openedAt,
		&closedAt,
		&m.OpeningBalance,
		&m.Status,
		&m.ClosingBalance,
		&m.ExpectedBalance,
		&m.CashSales,
		&m.CashRefunds,
		&m.CashExpenses,
		&m.CashDrops,
		&m.TotalSales,
		&breakdown,
		&m.Notes,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Shift{}, err
	}
	if breakdown.Valid {
		m.PaymentBreakdown = []byte(breakdown.String)
	}
	if m.OpenedAt, err = parseTime(openedAt); err != nil {
		return models.Shift{}, err
	}
	if m.ClosedAt, err = parseNullTime(closedAt); err != nil {
		return models.Shift{}, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return models.Shift{}, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return models.Shift{}, err
	}
	return m, nil
}

func (r *ShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m, err := mapping.ToModelShift(shift)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO shifts (
			shift_id, operator_id, opened_at, opening_balance, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.DB.ExecContext(ctx, query,
		m.ShiftID,
		m.OperatorID,
		formatTime(m.OpenedAt),
		m.OpeningBalance,
		m.Status,
		formatTime(m.CreatedAt),
		m.CreatedBy,
		formatTime(m.LastUpdatedAt),
		m.LastUpdatedBy,
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		// the only UNIQUE constraint on shifts is the open-shift index
		return fmt.Errorf("%w: operator %s already has an open shift", apperrors.ErrInvalidState, m.OperatorID)
	case isPrimaryKeyViolation(err):
		return fmt.Errorf("%w: shift %s", apperrors.ErrDuplicate, m.ShiftID)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: operator %s", apperrors.ErrNotFound, m.OperatorID)
	default:
		return storageError("failed to save shift "+m.ShiftID, err)
	}
}

func (r *ShiftRepository) CloseShift(ctx context.Context, shiftID string, closedAt time.Time, closedBy string, settle portsrepo.SettleFunc) (domain.ShiftClosing, error) {
	// A single connection serializes writers, so settle runs outside a transaction and
	// the conditional UPDATE below still rejects a shift that closed meanwhile.
	closing, err := settle(ctx)
	if err != nil {
		return domain.ShiftClosing{}, err
	}
	breakdown, err := closing.PaymentBreakdown.MarshalJSON()
	if err != nil {
		return domain.ShiftClosing{}, fmt.Errorf("encode payment breakdown for shift %s: %w", shiftID, err)
	}
	closedAtText := formatTime(closedAt)
	query := `
		UPDATE shifts SET
			status = 'closed',
			closed_at = ?,
			closing_balance = ?,
			expected_balance = ?,
			cash_sales = ?,
			cash_refunds = ?,
			cash_expenses = ?,
			cash_drops = ?,
			total_sales = ?,
			payment_breakdown = ?,
			notes = ?,
			last_updated_at = ?,
			last_updated_by = ?
		WHERE shift_id = ? AND status = 'open';
	`
	res, err := r.DB.ExecContext(ctx, query,
		closedAtText,
		closing.ClosingBalance,
		closing.ExpectedBalance,
		closing.CashSales,
		closing.CashRefunds,
		closing.CashExpenses,
		closing.CashDrops,
		closing.TotalSales,
		string(breakdown),
		closing.Notes,
		closedAtText,
		closedBy,
		shiftID,
	)
	if err != nil {
		return domain.ShiftClosing{}, storageError("failed to close shift "+shiftID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.ShiftClosing{}, storageError("failed to read close result for shift "+shiftID, err)
	}
	if n == 1 {
		return closing, nil
	}

	var status string
	err = r.DB.QueryRowContext(ctx, `SELECT status FROM shifts WHERE shift_id = ?;`, shiftID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ShiftClosing{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.ShiftClosing{}, storageError("failed to check status of shift "+shiftID, err)
	}
	return domain.ShiftClosing{}, fmt.Errorf("%w: shift %s is %s", apperrors.ErrInvalidState, shiftID, status)
}

func (r *ShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = ?;`
	m, err := scanShift(r.DB.QueryRowContext(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageError("failed to find shift "+shiftID, err)
	}
	shift, err := mapping.ToDomainShift(m)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *ShiftRepository) FindOpenShiftsByOperator(ctx context.Context, operatorID string) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE operator_id = ? AND status = 'open' ORDER BY opened_at;`
	return r.queryShifts(ctx, query, operatorID)
}

func (r *ShiftRepository) ListShiftsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE operator_id = ?`
	args := []any{operatorID}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		query += ` AND (opened_at, shift_id) < (?, ?)`
		args = append(args, formatTime(cursor.OpenedAt), cursor.ShiftID)
	}
	query += ` ORDER BY opened_at DESC, shift_id DESC LIMIT ?;`
	args = append(args, fetchLimit)

	shifts, err := r.queryShifts(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(shifts) > limit {
		last := shifts[limit-1]
		token := pagination.EncodeToken(last.OpenedAt, last.ShiftID)
		nextTokenVal = &token
		shifts = shifts[:limit]
	}
	return shifts, nextTokenVal, nil
}

func (r *ShiftRepository) CountOpenShiftsPerOperator(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT operator_id, COUNT(*)
		FROM shifts
		WHERE status = 'open'
		GROUP BY operator_id
		HAVING COUNT(*) > 1;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("failed to count open shifts", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var operatorID string
		var n int
		if err := rows.Scan(&operatorID, &n); err != nil {
			return nil, storageError("failed to scan open shift count", err)
		}
		counts[operatorID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating open shift counts", err)
	}
	return counts, nil
}

func (r *ShiftRepository) queryShifts(ctx context.Context, query string, args ...any) ([]domain.Shift, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to query shifts", err)
	}
	defer rows.Close()

	var ms []models.Shift
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, storageError("failed to scan shift row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating shift rows", err)
	}
	return mapping.ToDomainShiftSlice(ms)
}
