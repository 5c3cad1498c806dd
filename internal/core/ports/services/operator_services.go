package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// OperatorSvc manages the operator directory.
type OperatorSvc interface {
	// CreateOperator registers an operator with a hashed PIN.
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorID string) (*domain.Operator, error)

	// GetOperator retrieves an operator by ID.
	GetOperator(ctx context.Context, operatorID string) (*domain.Operator, error)
}

// IntegritySvc reports storage states that violate shift invariants.
type IntegritySvc interface {
	// FindOperatorsWithMultipleOpenShifts returns operator IDs mapped to their open-shift count.
	FindOperatorsWithMultipleOpenShifts(ctx context.Context) (map[string]int, error)
}
