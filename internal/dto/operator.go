package dto

import "github.com/SscSPs/pos_shift_app/internal/core/domain"

// CreateOperatorRequest defines the data needed to register an operator.
type CreateOperatorRequest struct {
	Name        string              `json:"name" binding:"required,max=100"`
	PIN         string              `json:"pin" binding:"required,numeric,min=4,max=12"`
	Permissions []domain.Permission `json:"permissions" binding:"required,min=1"`
}
