package domain

import "time"

// SessionContext is the per-login state a till client works against. Its lifetime is
// tied to login/logout; ActiveShiftID is cleared as soon as the shift closes.
type SessionContext struct {
	SessionID     string    `json:"sessionID"`
	OperatorID    string    `json:"operatorID"`
	ActiveShiftID *string   `json:"activeShiftID,omitempty"`
	StartedAt     time.Time `json:"startedAt"`
}
