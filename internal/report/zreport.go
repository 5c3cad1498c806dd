// Package report renders printable shift reports for the till printer.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
	"github.com/SscSPs/pos_shift_app/internal/utils"
)

const (
	lineWidth  = 40
	labelWidth = 24
	timeLayout = "2006-01-02 15:04 MST"
)

// Input is everything a report needs. Summary is required while the shift is open;
// a closed shift is printed from its stored closing snapshot.
type Input struct {
	Shift        domain.Shift
	Summary      *domain.ReconciliationSummary
	OperatorName string
	PrintedAt    time.Time
}

// Renderer prints X-reports (open shift) and Z-reports (closed shift).
type Renderer struct {
	profile config.StoreProfile
	money   *utils.MoneyFormatter
}

// NewRenderer creates a renderer for the store profile's currency and tender labels.
func NewRenderer(profile config.StoreProfile) (*Renderer, error) {
	money, err := utils.NewMoneyFormatter(profile.CurrencyCode, profile.CurrencySymbol, profile.Locale, profile.Precision)
	if err != nil {
		return nil, err
	}
	return &Renderer{profile: profile, money: money}, nil
}

// figures are the drawer numbers a report prints, whichever source they came from.
type figures struct {
	opening   decimal.Decimal
	sales     decimal.Decimal
	refunds   decimal.Decimal
	expenses  decimal.Decimal
	drops     decimal.Decimal
	expected  decimal.Decimal
	total     decimal.Decimal
	breakdown domain.PaymentBreakdown
}

// Render writes the report for in to w.
func (r *Renderer) Render(w io.Writer, in Input) error {
	shift := in.Shift
	var f figures
	switch {
	case shift.Status == domain.ShiftClosed && shift.Closing != nil:
		c := shift.Closing
		f = figures{shift.OpeningBalance, c.CashSales, c.CashRefunds, c.CashExpenses, c.CashDrops, c.ExpectedBalance, c.TotalSales, c.PaymentBreakdown}
	case in.Summary != nil:
		s := in.Summary
		f = figures{s.OpeningBalance, s.CashSales, s.CashRefunds, s.CashExpenses, s.CashDrops, s.ExpectedBalance, s.TotalSales, s.PaymentBreakdown}
	default:
		return errors.New("report: an open shift needs a live summary")
	}

	var b strings.Builder
	b.WriteString(r.profile.StoreName + "\n")
	if shift.Status == domain.ShiftClosed {
		b.WriteString("Z-REPORT\n")
	} else {
		b.WriteString("X-REPORT (shift open)\n")
	}
	r.field(&b, "Shift", shift.ShiftID)
	operator := shift.OperatorID
	if in.OperatorName != "" {
		operator = in.OperatorName
	}
	r.field(&b, "Operator", operator)
	r.field(&b, "Opened", shift.OpenedAt.UTC().Format(timeLayout))
	if shift.ClosedAt != nil {
		r.field(&b, "Closed", shift.ClosedAt.UTC().Format(timeLayout))
	}
	r.field(&b, "Printed", in.PrintedAt.UTC().Format(timeLayout))
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")

	r.amount(&b, "Opening balance", f.opening)
	r.amount(&b, "Cash sales", f.sales)
	r.amount(&b, "Cash refunds", f.refunds)
	r.amount(&b, "Paid out", f.expenses.Neg())
	r.amount(&b, "Cash drops", f.drops.Neg())
	r.amount(&b, "Expected in drawer", f.expected)
	if c := shift.Closing; c != nil {
		v := c.Variance()
		r.amount(&b, "Counted", c.ClosingBalance)
		r.amount(&b, fmt.Sprintf("Variance (%s)", v.Status), v.Amount)
	}
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")

	b.WriteString("Tenders (" + r.money.Code() + ")\n")
	for _, e := range f.breakdown.Entries() {
		r.amount(&b, "  "+r.profile.MethodLabel(e.Method), e.Total)
	}
	r.amount(&b, "Total sales", f.total)

	if c := shift.Closing; c != nil && c.Notes != "" {
		b.WriteString(strings.Repeat("-", lineWidth) + "\n")
		b.WriteString("Notes: " + c.Notes + "\n")
	}
	b.WriteString(strings.Repeat("=", lineWidth) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-10s%s\n", label, value)
}

func (r *Renderer) amount(b *strings.Builder, label string, value decimal.Decimal) {
	fmt.Fprintf(b, "%-*s%*s\n", labelWidth, label, lineWidth-labelWidth, r.money.Format(value))
}
