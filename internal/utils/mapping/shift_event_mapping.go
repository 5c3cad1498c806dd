package mapping

import (
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/models"
)

// ToModelShiftEvent converts a domain ShiftEvent to a model ShiftEvent. Seq is assigned by storage.
func ToModelShiftEvent(d domain.ShiftEvent) models.ShiftEvent {
	m := models.ShiftEvent{
		EventID:    d.EventID,
		ShiftID:    d.ShiftID,
		EventType:  string(d.Type),
		Amount:     d.Amount,
		OccurredAt: d.OccurredAt,
		CreatedBy:  d.CreatedBy,
	}
	if d.Notes != "" {
		notes := d.Notes
		m.Notes = &notes
	}
	return m
}

// ToDomainShiftEvent converts a model ShiftEvent to a domain ShiftEvent
func ToDomainShiftEvent(m models.ShiftEvent) domain.ShiftEvent {
	d := domain.ShiftEvent{
		EventID:    m.EventID,
		ShiftID:    m.ShiftID,
		Type:       domain.ShiftEventType(m.EventType),
		Amount:     m.Amount,
		OccurredAt: m.OccurredAt,
		CreatedBy:  m.CreatedBy,
	}
	if m.Notes != nil {
		d.Notes = *m.Notes
	}
	return d
}

// ToDomainShiftEventSlice converts a slice of model ShiftEvents to a slice of domain ShiftEvents
func ToDomainShiftEventSlice(ms []models.ShiftEvent) []domain.ShiftEvent {
	ds := make([]domain.ShiftEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShiftEvent(m)
	}
	return ds
}
