package repositories

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
)

// OperatorReader defines read operations for operator data
type OperatorReader interface {
	// FindOperatorByID retrieves an operator. Returns apperrors.ErrNotFound if absent.
	FindOperatorByID(ctx context.Context, operatorID string) (*domain.Operator, error)
}

// OperatorWriter defines write operations for operator data
type OperatorWriter interface {
	// SaveOperator persists a new operator.
	SaveOperator(ctx context.Context, operator domain.Operator) error
}

// OperatorRepositoryFacade combines all operator-related repository interfaces
type OperatorRepositoryFacade interface {
	OperatorReader
	OperatorWriter
}
