package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxShiftEventRepository struct {
	BaseRepository
}

func newPgxShiftEventRepository(pool *pgxpool.Pool) portsrepo.ShiftEventRepositoryFacade {
	return &PgxShiftEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShiftEventRepository implements portsrepo.ShiftEventRepositoryFacade
var _ portsrepo.ShiftEventRepositoryFacade = (*PgxShiftEventRepository)(nil)

// AppendEvent inserts the event while holding a share lock on its shift row. A close
// running concurrently either commits first (and the insert finds no open shift) or
// waits for this transaction.
func (r *PgxShiftEventRepository) AppendEvent(ctx context.Context, event domain.ShiftEvent) error {
	m := mapping.ToModelShiftEvent(event)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM shifts WHERE shift_id = $1 FOR SHARE;`, m.ShiftID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock shift "+m.ShiftID, err)
	}
	if status != string(domain.ShiftOpen) {
		return fmt.Errorf("%w: shift %s is %s", apperrors.ErrInvalidState, m.ShiftID, status)
	}

	query := `
		INSERT INTO shift_events (event_id, shift_id, event_type, amount, notes, occurred_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.EventID,
		m.ShiftID,
		m.EventType,
		m.Amount,
		m.Notes,
		m.OccurredAt,
		m.CreatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: event %s", apperrors.ErrDuplicate, m.EventID)
		}
		return apperrors.NewAppError(500, "failed to append event to shift "+m.ShiftID, err)
	}

	return r.Commit(ctx, tx)
}

// FindEventsByShiftID returns the events of a shift in insertion order.
func (r *PgxShiftEventRepository) FindEventsByShiftID(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error) {
	query := `
		SELECT event_id, seq, shift_id, event_type, amount, notes, occurred_at, created_by
		FROM shift_events
		WHERE shift_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events for shift "+shiftID, err)
	}
	defer rows.Close()

	events := make([]models.ShiftEvent, 0)
	for rows.Next() {
		var m models.ShiftEvent
		if err := rows.Scan(&m.EventID, &m.Seq, &m.ShiftID, &m.EventType, &m.Amount, &m.Notes, &m.OccurredAt, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan event row for shift "+shiftID, err)
		}
		events = append(events, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating event rows for shift "+shiftID, err)
	}
	return mapping.ToDomainShiftEventSlice(events), nil
}
