package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/utils"
)

type operatorService struct {
	BaseService
	operatorRepo portsrepo.OperatorRepositoryFacade
}

// NewOperatorService creates a new OperatorService.
func NewOperatorService(repo portsrepo.OperatorRepositoryFacade) portssvc.OperatorSvc {
	return &operatorService{operatorRepo: repo}
}

var _ portssvc.OperatorSvc = (*operatorService)(nil)

func (s *operatorService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorID string) (*domain.Operator, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	perms := make([]domain.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		if !domain.IsKnownPermission(p) {
			return nil, fmt.Errorf("%w: unknown permission %q", apperrors.ErrValidation, p)
		}
		if !slices.Contains(perms, p) {
			perms = append(perms, p)
		}
	}

	hash, err := utils.HashPIN(req.PIN)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash PIN")
		return nil, err
	}

	operator := domain.Operator{
		OperatorID:  uuid.NewString(),
		Name:        req.Name,
		PINHash:     hash,
		Permissions: perms,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorID, s.clock()),
	}

	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		s.LogError(ctx, err, "Failed to save operator", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Operator created", slog.String("operator_id", operator.OperatorID))
	return &operator, nil
}

func (s *operatorService) GetOperator(ctx context.Context, operatorID string) (*domain.Operator, error) {
	if err := validateID("operator", operatorID); err != nil {
		return nil, err
	}
	operator, err := s.operatorRepo.FindOperatorByID(ctx, operatorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find operator", slog.String("operator_id", operatorID))
		}
		return nil, err
	}
	return operator, nil
}
