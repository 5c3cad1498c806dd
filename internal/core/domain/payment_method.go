package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// PaymentMethodID identifies a tender type, e.g. "cash" or "card".
type PaymentMethodID string

// CashMethod is the only tender that moves money through the drawer.
const CashMethod PaymentMethodID = "cash"

// PaymentMethod is a tender configured for the store.
type PaymentMethod struct {
	ID    PaymentMethodID `json:"id" toml:"id"`
	Label string          `json:"label" toml:"label"`
}

// BreakdownEntry is one row of a PaymentBreakdown.
type BreakdownEntry struct {
	Method PaymentMethodID `json:"method"`
	Total  decimal.Decimal `json:"total"`
}

// PaymentBreakdown accumulates signed totals per tender. Configured methods keep their
// configured order and always appear, even at zero. Methods seen in payments but absent
// from the configuration are kept after them, sorted by id, so the output never depends
// on the order payments were folded in.
type PaymentBreakdown struct {
	entries    []BreakdownEntry
	index      map[PaymentMethodID]int
	configured int
}

// NewPaymentBreakdown creates a breakdown whose key set starts with methods.
func NewPaymentBreakdown(methods []PaymentMethodID) PaymentBreakdown {
	b := PaymentBreakdown{
		entries: make([]BreakdownEntry, 0, len(methods)),
		index:   make(map[PaymentMethodID]int, len(methods)),
	}
	for _, m := range methods {
		if _, dup := b.index[m]; dup {
			continue
		}
		b.index[m] = len(b.entries)
		b.entries = append(b.entries, BreakdownEntry{Method: m, Total: decimal.Zero})
	}
	b.configured = len(b.entries)
	return b
}

// Add accumulates amount under method.
func (b *PaymentBreakdown) Add(method PaymentMethodID, amount decimal.Decimal) {
	if b.index == nil {
		b.index = make(map[PaymentMethodID]int)
	}
	i, ok := b.index[method]
	if !ok {
		i = len(b.entries)
		b.index[method] = i
		b.entries = append(b.entries, BreakdownEntry{Method: method, Total: decimal.Zero})
	}
	b.entries[i].Total = b.entries[i].Total.Add(amount)
}

// Total returns the accumulated amount for method, zero if unseen.
func (b PaymentBreakdown) Total(method PaymentMethodID) decimal.Decimal {
	if i, ok := b.index[method]; ok {
		return b.entries[i].Total
	}
	return decimal.Zero
}

// Entries returns the rows in their stable order.
func (b PaymentBreakdown) Entries() []BreakdownEntry {
	out := make([]BreakdownEntry, 0, len(b.entries))
	out = append(out, b.entries[:b.configured]...)
	extra := append([]BreakdownEntry(nil), b.entries[b.configured:]...)
	sort.Slice(extra, func(i, j int) bool { return extra[i].Method < extra[j].Method })
	return append(out, extra...)
}

// Unconfigured lists methods that were accumulated but not part of the configured key set.
func (b PaymentBreakdown) Unconfigured() []PaymentMethodID {
	entries := b.Entries()
	out := make([]PaymentMethodID, 0, len(entries)-b.configured)
	for _, e := range entries[b.configured:] {
		out = append(out, e.Method)
	}
	return out
}

// Len is the number of methods in the breakdown.
func (b PaymentBreakdown) Len() int {
	return len(b.entries)
}

// MarshalJSON renders the breakdown as an ordered array.
func (b PaymentBreakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Entries())
}

// UnmarshalJSON restores a breakdown, treating the stored order as the configured order.
func (b *PaymentBreakdown) UnmarshalJSON(data []byte) error {
	var entries []BreakdownEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	methods := make([]PaymentMethodID, len(entries))
	for i, e := range entries {
		methods[i] = e.Method
	}
	*b = NewPaymentBreakdown(methods)
	for _, e := range entries {
		b.Add(e.Method, e.Total)
	}
	return nil
}

// Value stores the breakdown as JSON text.
func (b PaymentBreakdown) Value() (driver.Value, error) {
	raw, err := b.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan reads a breakdown stored by Value.
func (b *PaymentBreakdown) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = NewPaymentBreakdown(nil)
		return nil
	case string:
		return b.UnmarshalJSON([]byte(v))
	case []byte:
		return b.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentBreakdown", src)
	}
}
