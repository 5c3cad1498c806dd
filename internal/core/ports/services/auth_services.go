package services

import (
	"context"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/dto"
)

// AuthSvc authenticates operators at a till.
type AuthSvc interface {
	// Login verifies the operator's PIN, starts a session and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Logout ends the session.
	Logout(ctx context.Context, sessionID string) error
}

// SessionSvc manages the explicit per-login context handed to till clients.
type SessionSvc interface {
	// StartSession creates a session for the operator.
	StartSession(ctx context.Context, operatorID string) domain.SessionContext

	// GetSession returns the session or apperrors.ErrNotFound.
	GetSession(ctx context.Context, sessionID string) (*domain.SessionContext, error)

	// SetActiveShift points the session at an open shift.
	SetActiveShift(ctx context.Context, sessionID string, shiftID string) error

	// EndSession forgets the session. Unknown ids are ignored.
	EndSession(ctx context.Context, sessionID string)

	// IsActive reports whether the session is still live.
	IsActive(sessionID string) bool
}
