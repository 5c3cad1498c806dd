package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
)

type ShiftEventRepository struct {
	BaseRepository
}

// Ensure ShiftEventRepository implements portsrepo.ShiftEventRepositoryFacade
var _ portsrepo.ShiftEventRepositoryFacade = (*ShiftEventRepository)(nil)

// AppendEvent inserts the event only while its shift is open. The existence check and
// the insert are one statement, so a close that commits first wins.
func (r *ShiftEventRepository) AppendEvent(ctx context.Context, event domain.ShiftEvent) error {
	m := mapping.ToModelShiftEvent(event)
	query := `
		INSERT INTO shift_events (event_id, shift_id, event_type, amount, notes, occurred_at, created_by)
		SELECT ?, ?, ?, ?, ?, ?, ?
		WHERE EXISTS (SELECT 1 FROM shifts WHERE shift_id = ? AND status = 'open');
	`
	res, err := r.DB.ExecContext(ctx, query,
		m.EventID,
		m.ShiftID,
		m.EventType,
		m.Amount,
		m.Notes,
		formatTime(m.OccurredAt),
		m.CreatedBy,
		m.ShiftID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: event %s", apperrors.ErrDuplicate, m.EventID)
		}
		return storageError("failed to append event to shift "+m.ShiftID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageError("failed to read append result for shift "+m.ShiftID, err)
	}
	if n == 1 {
		return nil
	}

	var status string
	err = r.DB.QueryRowContext(ctx, `SELECT status FROM shifts WHERE shift_id = ?;`, m.ShiftID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return storageError("failed to check status of shift "+m.ShiftID, err)
	}
	return fmt.Errorf("%w: shift %s is %s", apperrors.ErrInvalidState, m.ShiftID, status)
}

func (r *ShiftEventRepository) FindEventsByShiftID(ctx context.Context, shiftID string) ([]domain.ShiftEvent, error) {
	query := `
		SELECT event_id, seq, shift_id, event_type, amount, notes, occurred_at, created_by
		FROM shift_events
		WHERE shift_id = ?
		ORDER BY seq;
	`
	rows, err := r.DB.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, storageError("failed to query events for shift "+shiftID, err)
	}
	defer rows.Close()

	events := make([]models.ShiftEvent, 0)
	for rows.Next() {
		var m models.ShiftEvent
		var occurredAt string
		if err := rows.Scan(&m.EventID, &m.Seq, &m.ShiftID, &m.EventType, &m.Amount, &m.Notes, &occurredAt, &m.CreatedBy); err != nil {
			return nil, storageError("failed to scan event row for shift "+shiftID, err)
		}
		if m.OccurredAt, err = parseTime(occurredAt); err != nil {
			return nil, storageError("failed to scan event row for shift "+shiftID, err)
		}
		events = append(events, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating event rows for shift "+shiftID, err)
	}
	return mapping.ToDomainShiftEventSlice(events), nil
}
