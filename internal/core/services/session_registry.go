package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_shift_app/internal/core/ports/services"
)

// SessionRegistry keeps the live till sessions in memory. It also observes shift
// transitions so every session of an operator follows that operator's open shift.
type SessionRegistry struct {
	BaseService
	mu       sync.RWMutex
	sessions map[string]*domain.SessionContext
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*domain.SessionContext)}
}

var (
	_ portssvc.SessionSvc    = (*SessionRegistry)(nil)
	_ portssvc.ShiftObserver = (*SessionRegistry)(nil)
)

func (r *SessionRegistry) StartSession(ctx context.Context, operatorID string) domain.SessionContext {
	session := &domain.SessionContext{
		SessionID:  uuid.NewString(),
		OperatorID: operatorID,
		StartedAt:  r.clock(),
	}

	r.mu.Lock()
	r.sessions[session.SessionID] = session
	r.mu.Unlock()

	r.LogInfo(ctx, "Session started", slog.String("session_id", session.SessionID), slog.String("operator_id", operatorID))
	return copySession(session)
}

func (r *SessionRegistry) GetSession(_ context.Context, sessionID string) (*domain.SessionContext, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
	}
	out := copySession(session)
	return &out, nil
}

func (r *SessionRegistry) SetActiveShift(_ context.Context, sessionID string, shiftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
	}
	id := shiftID
	session.ActiveShiftID = &id
	return nil
}

func (r *SessionRegistry) EndSession(ctx context.Context, sessionID string) {
	r.mu.Lock()
	_, existed := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if existed {
		r.LogInfo(ctx, "Session ended", slog.String("session_id", sessionID))
	}
}

func (r *SessionRegistry) IsActive(sessionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[sessionID]
	return ok
}

func (r *SessionRegistry) ShiftOpened(_ context.Context, shift domain.Shift) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.sessions {
		if session.OperatorID == shift.OperatorID {
			id := shift.ShiftID
			session.ActiveShiftID = &id
		}
	}
}

func (r *SessionRegistry) CashDropRecorded(context.Context, domain.Shift, domain.ShiftEvent) {}

// ShiftClosed clears the active-shift pointer of every session still pointing at shift.
func (r *SessionRegistry) ShiftClosed(ctx context.Context, shift domain.Shift) {
	r.mu.Lock()
	cleared := 0
	for _, session := range r.sessions {
		if session.ActiveShiftID != nil && *session.ActiveShiftID == shift.ShiftID {
			session.ActiveShiftID = nil
			cleared++
		}
	}
	r.mu.Unlock()

	r.LogDebug(ctx, "Cleared active shift from sessions", slog.String("shift_id", shift.ShiftID), slog.Int("sessions", cleared))
}

func copySession(s *domain.SessionContext) domain.SessionContext {
	out := *s
	if s.ActiveShiftID != nil {
		id := *s.ActiveShiftID
		out.ActiveShiftID = &id
	}
	return out
}
