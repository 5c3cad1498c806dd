package dto

import "time"

// LoginRequest defines the PIN login payload of a till.
type LoginRequest struct {
	OperatorID string `json:"operatorID" binding:"required,uuid"`
	PIN        string `json:"pin" binding:"required,numeric,min=4,max=12"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expiresAt"`
	SessionID     string    `json:"sessionID"`
	ActiveShiftID *string   `json:"activeShiftID,omitempty"` // Set when an open shift was resumed
}
