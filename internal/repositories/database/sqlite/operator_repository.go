package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/models"
	"github.com/SscSPs/pos_shift_app/internal/utils/mapping"
)

type OperatorRepository struct {
	BaseRepository
}

// Ensure OperatorRepository implements portsrepo.OperatorRepositoryFacade
var _ portsrepo.OperatorRepositoryFacade = (*OperatorRepository)(nil)

func (r *OperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	perms, err := json.Marshal(m.Permissions)
	if err != nil {
		return fmt.Errorf("encode permissions for operator %s: %w", m.OperatorID, err)
	}
	query := `
		INSERT INTO operators (
			operator_id, name, pin_hash, permissions, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = r.DB.ExecContext(ctx, query,
		m.OperatorID,
		m.Name,
		m.PINHash,
		string(perms),
		m.IsActive,
		formatTime(m.CreatedAt),
		m.CreatedBy,
		formatTime(m.LastUpdatedAt),
		m.LastUpdatedBy,
	)
	if err != nil {
		if isPrimaryKeyViolation(err) || isUniqueViolation(err) {
			return fmt.Errorf("%w: operator %s", apperrors.ErrDuplicate, m.OperatorID)
		}
		return storageError("failed to save operator "+m.OperatorID, err)
	}
	return nil
}

func (r *OperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `
		SELECT operator_id, name, pin_hash, permissions, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM operators
		WHERE operator_id = ?;
	`
	var m models.Operator
	var perms, createdAt, updatedAt string
	err := r.DB.QueryRowContext(ctx, query, operatorID).Scan(
		&m.OperatorID,
		&m.Name,
		&m.PINHash,
		&perms,
		&m.IsActive,
		&createdAt,
		&m.CreatedBy,
		&updatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storageError("failed to find operator "+operatorID, err)
	}
	if err := json.Unmarshal([]byte(perms), &m.Permissions); err != nil {
		return nil, storageError("failed to decode permissions of operator "+operatorID, err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, storageError("failed to find operator "+operatorID, err)
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, storageError("failed to find operator "+operatorID, err)
	}
	operator := mapping.ToDomainOperator(m)
	return &operator, nil
}
