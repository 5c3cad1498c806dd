package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) (models.Shift, error) {
	m := models.Shift{
		ShiftID:        d.ShiftID,
		OperatorID:     d.OperatorID,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		OpeningBalance: d.OpeningBalance,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.Closing == nil {
		return m, nil
	}

	c := d.Closing
	m.ClosingBalance = nullDecimal(c.ClosingBalance)
	m.ExpectedBalance = nullDecimal(c.ExpectedBalance)
	m.CashSales = nullDecimal(c.CashSales)
	m.CashRefunds = nullDecimal(c.CashRefunds)
	m.CashExpenses = nullDecimal(c.CashExpenses)
	m.CashDrops = nullDecimal(c.CashDrops)
	m.TotalSales = nullDecimal(c.TotalSales)
	breakdown, err := c.PaymentBreakdown.MarshalJSON()
	if err != nil {
		return models.Shift{}, fmt.Errorf("encode payment breakdown for shift %s: %w", d.ShiftID, err)
	}
	m.PaymentBreakdown = breakdown
	notes := c.Notes
	m.Notes = &notes
	return m, nil
}

// ToDomainShift converts a model Shift to a domain Shift. A closed row missing any
// closing column is reported as an integrity error rather than a half-built closing.
func ToDomainShift(m models.Shift) (domain.Shift, error) {
	d := domain.Shift{
		ShiftID:        m.ShiftID,
		OperatorID:     m.OperatorID,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		OpeningBalance: m.OpeningBalance,
		Status:         domain.ShiftStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if d.Status != domain.ShiftClosed {
		return d, nil
	}

	cols := []decimal.NullDecimal{m.ClosingBalance, m.ExpectedBalance, m.CashSales, m.CashRefunds, m.CashExpenses, m.CashDrops, m.TotalSales}
	for _, c := range cols {
		if !c.Valid {
			return domain.Shift{}, fmt.Errorf("%w: closed shift %s has null closing columns", apperrors.ErrIntegrity, m.ShiftID)
		}
	}
	if m.ClosedAt == nil || m.PaymentBreakdown == nil {
		return domain.Shift{}, fmt.Errorf("%w: closed shift %s has no close time or breakdown", apperrors.ErrIntegrity, m.ShiftID)
	}

	var breakdown domain.PaymentBreakdown
	if err := breakdown.UnmarshalJSON(m.PaymentBreakdown); err != nil {
		return domain.Shift{}, fmt.Errorf("decode payment breakdown for shift %s: %w", m.ShiftID, err)
	}
	closing := domain.ShiftClosing{
		ClosingBalance:   m.ClosingBalance.Decimal,
		ExpectedBalance:  m.ExpectedBalance.Decimal,
		CashSales:        m.CashSales.Decimal,
		CashRefunds:      m.CashRefunds.Decimal,
		CashExpenses:     m.CashExpenses.Decimal,
		CashDrops:        m.CashDrops.Decimal,
		TotalSales:       m.TotalSales.Decimal,
		PaymentBreakdown: breakdown,
	}
	if m.Notes != nil {
		closing.Notes = *m.Notes
	}
	d.Closing = &closing
	return d, nil
}

// ToDomainShiftSlice converts a slice of model Shifts to a slice of domain Shifts
func ToDomainShiftSlice(ms []models.Shift) ([]domain.Shift, error) {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		d, err := ToDomainShift(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

func nullDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
