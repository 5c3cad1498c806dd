package dto

import (
	"time"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest defines the data needed to open a shift.
type OpenShiftRequest struct {
	OpeningBalance *decimal.Decimal `json:"openingBalance" binding:"required" swaggertype:"string" example:"100.00"`
}

// CloseShiftRequest carries the operator's physical count and optional remarks.
type CloseShiftRequest struct {
	CountedCash *decimal.Decimal `json:"countedCash" binding:"required" swaggertype:"string" example:"108.00"`
	Notes       string           `json:"notes" binding:"max=1000"`
}

// CashDropRequest defines a manual removal of cash from the drawer.
type CashDropRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"20.00"`
	Notes  string           `json:"notes" binding:"max=500"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID        string               `json:"shiftID"`
	OperatorID     string               `json:"operatorID"`
	Status         domain.ShiftStatus   `json:"status"`
	OpenedAt       time.Time            `json:"openedAt"`
	ClosedAt       *time.Time           `json:"closedAt,omitempty"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Closing        *domain.ShiftClosing `json:"closing,omitempty"`
	Variance       *domain.Variance     `json:"variance,omitempty"` // Closed shifts only
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy  string               `json:"lastUpdatedBy"`
}

// ToShiftResponse converts a domain.Shift to ShiftResponse DTO
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	res := ShiftResponse{
		ShiftID:        s.ShiftID,
		OperatorID:     s.OperatorID,
		Status:         s.Status,
		OpenedAt:       s.OpenedAt,
		ClosedAt:       s.ClosedAt,
		OpeningBalance: s.OpeningBalance,
		Closing:        s.Closing,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
		LastUpdatedAt:  s.LastUpdatedAt,
		LastUpdatedBy:  s.LastUpdatedBy,
	}
	if s.Closing != nil {
		v := s.Closing.Variance()
		res.Variance = &v
	}
	return res
}

// ToListShiftResponse converts a slice of domain.Shift to a slice of ShiftResponse DTOs
func ToListShiftResponse(shifts []domain.Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		res[i] = ToShiftResponse(&shifts[i])
	}
	return res
}

// ListShiftsParams defines query parameters for listing an operator's shifts.
type ListShiftsParams struct {
	OperatorID string  `form:"operatorID" binding:"omitempty,uuid"` // Defaults to the caller
	Limit      int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken  *string `form:"nextToken"`
}

// ListShiftsResponse wraps a page of shifts.
type ListShiftsResponse struct {
	Shifts    []ShiftResponse `json:"shifts"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ShiftEventResponse defines the data returned for a drawer event.
type ShiftEventResponse struct {
	EventID    string                `json:"eventID"`
	ShiftID    string                `json:"shiftID"`
	Type       domain.ShiftEventType `json:"type"`
	Amount     decimal.Decimal       `json:"amount"`
	Notes      string                `json:"notes,omitempty"`
	OccurredAt time.Time             `json:"occurredAt"`
	CreatedBy  string                `json:"createdBy"`
}

// ToShiftEventResponse converts a domain.ShiftEvent to its DTO.
func ToShiftEventResponse(e *domain.ShiftEvent) ShiftEventResponse {
	return ShiftEventResponse{
		EventID:    e.EventID,
		ShiftID:    e.ShiftID,
		Type:       e.Type,
		Amount:     e.Amount,
		Notes:      e.Notes,
		OccurredAt: e.OccurredAt,
		CreatedBy:  e.CreatedBy,
	}
}

// ListShiftEventsResponse wraps the chronological event list of a shift.
type ListShiftEventsResponse struct {
	Events []ShiftEventResponse `json:"events"`
}

// ToListShiftEventsResponse converts events to their response wrapper.
func ToListShiftEventsResponse(events []domain.ShiftEvent) ListShiftEventsResponse {
	res := make([]ShiftEventResponse, len(events))
	for i := range events {
		res[i] = ToShiftEventResponse(&events[i])
	}
	return ListShiftEventsResponse{Events: res}
}

// SummaryParams are the optional query parameters of the live summary.
type SummaryParams struct {
	// Counted previews the variance against a count without closing the shift.
	Counted *string `form:"counted"`
}

// ShiftSummaryResponse is a live reconciliation, optionally with a variance preview.
type ShiftSummaryResponse struct {
	domain.ReconciliationSummary
	CurrencyCode string           `json:"currencyCode"`
	Variance     *domain.Variance `json:"variance,omitempty"`
}
