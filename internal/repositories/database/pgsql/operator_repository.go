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

type PgxOperatorRepository struct {
	BaseRepository
}

func newPgxOperatorRepository(pool *pgxpool.Pool) portsrepo.OperatorRepositoryFacade {
	return &PgxOperatorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOperatorRepository implements portsrepo.OperatorRepositoryFacade
var _ portsrepo.OperatorRepositoryFacade = (*PgxOperatorRepository)(nil)

func (r *PgxOperatorRepository) SaveOperator(ctx context.Context, operator domain.Operator) error {
	m := mapping.ToModelOperator(operator)
	query := `
		INSERT INTO operators (
			operator_id, name, pin_hash, permissions, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OperatorID,
		m.Name,
		m.PINHash,
		m.Permissions,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return fmt.Errorf("%w: operator %s", apperrors.ErrDuplicate, m.OperatorID)
		}
		return apperrors.NewAppError(500, "failed to save operator "+m.OperatorID, err)
	}
	return nil
}

func (r *PgxOperatorRepository) FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error) {
	query := `
		SELECT operator_id, name, pin_hash, permissions, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM operators
		WHERE operator_id = $1;
	`
	var m models.Operator
	err := r.Pool.QueryRow(ctx, query, operatorID).Scan(
		&m.OperatorID,
		&m.Name,
		&m.PINHash,
		&m.Permissions,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find operator "+operatorID, err)
	}
	operator := mapping.ToDomainOperator(m)
	return &operator, nil
}
