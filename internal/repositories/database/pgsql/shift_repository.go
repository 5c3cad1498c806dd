package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
	"github.com/SscSPs/pos_shift_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const openShiftIndex = "ux_shifts_one_open_per_operator"

const shiftColumns = `
	shift_id, operator_id, opened_at, closed_at, opening_balance, status,
	closing_balance, expected_balance, cash_sales, cash_refunds, cash_expenses,
	cash_drops, total_sales, payment_breakdown, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxShiftRepository struct {
	BaseRepository
}

func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.OperatorID,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.OpeningBalance,
		&m.Status,
		&m.ClosingBalance,
		&m.ExpectedBalance,
		&m.CashSales,
		&m.CashRefunds,
		&m.CashExpenses,
		&m.CashDrops,
		&m.TotalSales,
		&m.PaymentBreakdown,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveShift inserts a newly opened shift. The partial unique index rejects a second open shift.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m, err := mapping.ToModelShift(shift)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO shifts (
			shift_id, operator_id, opened_at, opening_balance, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.OperatorID,
		m.OpenedAt,
		m.OpeningBalance,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch code, constraint := pgErrorCode(err); {
		case code == pgUniqueViolation && constraint == openShiftIndex:
			return fmt.Errorf("%w: operator %s already has an open shift", apperrors.ErrInvalidState, m.OperatorID)
		case code == pgUniqueViolation:
			return fmt.Errorf("%w: shift %s", apperrors.ErrDuplicate, m.ShiftID)
		case code == pgForeignKeyViolation:
			return fmt.Errorf("%w: operator %s", apperrors.ErrNotFound, m.OperatorID)
		}
		return apperrors.NewAppError(500, "failed to save shift "+m.ShiftID, err)
	}
	return nil
}

// CloseShift locks the shift row FOR UPDATE before settling. AppendEvent takes the
// same row FOR SHARE, so no drawer event can commit between the summary settle reads
// and the closing UPDATE.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID string, closedAt time.Time, closedBy string, settle portsrepo.SettleFunc) (domain.ShiftClosing, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.ShiftClosing{}, err
	}
	defer r.Rollback(ctx, tx)

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM shifts WHERE shift_id = $1 FOR UPDATE;`, shiftID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ShiftClosing{}, apperrors.ErrNotFound
	}
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgInvalidTextRep {
			return domain.ShiftClosing{}, apperrors.ErrNotFound
		}
		return domain.ShiftClosing{}, apperrors.NewAppError(500, "failed to lock shift "+shiftID, err)
	}
	if status != string(domain.ShiftOpen) {
		return domain.ShiftClosing{}, fmt.Errorf("%w: shift %s is %s", apperrors.ErrInvalidState, shiftID, status)
	}

	closing, err := settle(ctx)
	if err != nil {
		return domain.ShiftClosing{}, err
	}
	breakdown, err := closing.PaymentBreakdown.MarshalJSON()
	if err != nil {
		return domain.ShiftClosing{}, fmt.Errorf("encode payment breakdown for shift %s: %w", shiftID, err)
	}
	query := `
		UPDATE shifts SET
			status = 'closed',
			closed_at = $2,
			closing_balance = $3,
			expected_balance = $4,
			cash_sales = $5,
			cash_refunds = $6,
			cash_expenses = $7,
			cash_drops = $8,
			total_sales = $9,
			payment_breakdown = $10,
			notes = $11,
			last_updated_at = $2,
			last_updated_by = $12
		WHERE shift_id = $1 AND status = 'open';
	`
	tag, err := tx.Exec(ctx, query,
		shiftID,
		closedAt,
		closing.ClosingBalance,
		closing.ExpectedBalance,
		closing.CashSales,
		closing.CashRefunds,
		closing.CashExpenses,
		closing.CashDrops,
		closing.TotalSales,
		breakdown,
		closing.Notes,
		closedBy,
	)
	if err != nil {
		return domain.ShiftClosing{}, apperrors.NewAppError(500, "failed to close shift "+shiftID, err)
	}
	if tag.RowsAffected() != 1 {
		return domain.ShiftClosing{}, fmt.Errorf("%w: shift %s is no longer open", apperrors.ErrInvalidState, shiftID)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return domain.ShiftClosing{}, err
	}
	return closing, nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	m, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if code, _ := pgErrorCode(err); code == pgInvalidTextRep {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shift "+shiftID, err)
	}
	shift, err := mapping.ToDomainShift(m)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *PgxShiftRepository) FindOpenShiftsByOperator(ctx context.Context, operatorID string) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE operator_id = $1 AND status = 'open' ORDER BY opened_at;`
	return r.queryShifts(ctx, query, operatorID)
}

// ListShiftsByOperator retrieves a paginated list of an operator's shifts using token-based pagination.
// It returns the list of shifts, a token for the next page (if any), and an error.
func (r *PgxShiftRepository) ListShiftsByOperator(ctx context.Context, operatorID string, limit int, nextToken *string) ([]domain.Shift, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + shiftColumns + ` FROM shifts WHERE operator_id = $1`
	// shift_id breaks ties between shifts opened at the same instant.
	orderByClause := `ORDER BY opened_at DESC, shift_id DESC`
	args := []interface{}{operatorID}

	var query string
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %w", apperrors.ErrValidation, decodeErr))
		}
		args = append(args, cursor.OpenedAt, cursor.ShiftID)
		query = baseQuery + ` AND (opened_at, shift_id) < ($2, $3::uuid) ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	} else {
		query = baseQuery + ` ` + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	}
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

func (r *PgxShiftRepository) CountOpenShiftsPerOperator(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT operator_id, COUNT(*)
		FROM shifts
		WHERE status = 'open'
		GROUP BY operator_id
		HAVING COUNT(*) > 1;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to count open shifts", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var operatorID string
		var n int
		if err := rows.Scan(&operatorID, &n); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan open shift count", err)
		}
		counts[operatorID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating open shift counts", err)
	}
	return counts, nil
}

func (r *PgxShiftRepository) queryShifts(ctx context.Context, query string, args ...interface{}) ([]domain.Shift, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts", err)
	}
	defer rows.Close()

	var ms []models.Shift
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shift row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating shift rows", err)
	}
	return mapping.ToDomainShiftSlice(ms)
}
