package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
	"github.com/SscSPs/pos_shift_app/internal/dto"
	"github.com/SscSPs/pos_shift_app/internal/utils"
)

// authService issues till sessions for operators who present a valid PIN.
type authService struct {
	BaseService
	operatorRepo portsrepo.OperatorReader
	shifts       portssvc.ShiftReaderSvc
	sessions     portssvc.SessionSvc
	jwtSecret    string
	jwtIssuer    string
	jwtExpiry    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(operatorRepo portsrepo.OperatorReader, shifts portssvc.ShiftReaderSvc, sessions portssvc.SessionSvc, jwtSecret, jwtIssuer string, jwtExpiry time.Duration) portssvc.AuthSvc {
	return &authService{
		operatorRepo: operatorRepo,
		shifts:       shifts,
		sessions:     sessions,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		jwtExpiry:    jwtExpiry,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

var errBadCredentials = fmt.Errorf("%w: invalid operator or PIN", apperrors.ErrUnauthorized)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	operator, err := s.operatorRepo.FindOperatorByID(ctx, req.OperatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login for unknown operator", slog.String("operator_id", req.OperatorID))
			return nil, errBadCredentials
		}
		s.LogError(ctx, err, "Failed to load operator for login", slog.String("operator_id", req.OperatorID))
		return nil, err
	}
	if !operator.IsActive || !utils.CheckPINHash(req.PIN, operator.PINHash) {
		s.LogWarn(ctx, "Login rejected", slog.String("operator_id", req.OperatorID), slog.Bool("active", operator.IsActive))
		return nil, errBadCredentials
	}

	// Resolve the open shift before creating the session so an integrity fault
	// does not leave a dangling session behind.
	openShift, err := s.shifts.FindOpenShift(ctx, operator.OperatorID)
	if err != nil {
		return nil, err
	}

	session := s.sessions.StartSession(ctx, operator.OperatorID)
	resp := &dto.LoginResponse{SessionID: session.SessionID}
	if openShift != nil {
		if err := s.sessions.SetActiveShift(ctx, session.SessionID, openShift.ShiftID); err != nil {
			s.sessions.EndSession(ctx, session.SessionID)
			return nil, err
		}
		shiftID := openShift.ShiftID
		resp.ActiveShiftID = &shiftID
	}

	token, expiresAt, err := utils.GenerateSessionJWT(operator.OperatorID, session.SessionID, operator.Permissions, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.sessions.EndSession(ctx, session.SessionID)
		s.LogError(ctx, err, "Failed to sign session token", slog.String("operator_id", operator.OperatorID))
		return nil, err
	}
	resp.Token = token
	resp.ExpiresAt = expiresAt

	s.LogInfo(ctx, "Operator logged in",
		slog.String("operator_id", operator.OperatorID),
		slog.String("session_id", session.SessionID),
		slog.Bool("resumed_shift", openShift != nil))
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		return err
	}
	s.sessions.EndSession(ctx, sessionID)
	return nil
}
