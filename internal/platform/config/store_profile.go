package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/SscSPs/pos_shift_app/internal/core/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// StoreProfile describes the till's currency and the tenders it accepts.
type StoreProfile struct {
	StoreName      string                 `toml:"store_name"`
	CurrencyCode   string                 `toml:"currency_code"`
	CurrencySymbol string                 `toml:"currency_symbol"` // Empty: use the locale's symbol
	Precision      int32                  `toml:"precision"`
	Locale         string                 `toml:"locale"`
	PaymentMethods []domain.PaymentMethod `toml:"payment_methods"`
}

// DefaultStoreProfile is used when no profile file exists.
func DefaultStoreProfile() StoreProfile {
	return StoreProfile{
		StoreName:      "Store",
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		Precision:      2,
		Locale:         "en-US",
		PaymentMethods: []domain.PaymentMethod{
			{ID: domain.CashMethod, Label: "Cash"},
			{ID: "card", Label: "Card"},
		},
	}
}

// LoadStoreProfile decodes a TOML profile on top of the defaults. A missing file
// yields the defaults; unknown keys are rejected.
func LoadStoreProfile(path string) (StoreProfile, error) {
	profile := DefaultStoreProfile()
	if path == "" {
		return profile, nil
	}

	md, err := toml.DecodeFile(path, &profile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: store profile %s not found. Using built-in defaults (%s).\n", path, profile.CurrencyCode)
			return DefaultStoreProfile(), nil
		}
		return StoreProfile{}, fmt.Errorf("failed to read store profile %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return StoreProfile{}, fmt.Errorf("store profile %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := profile.Validate(); err != nil {
		return StoreProfile{}, fmt.Errorf("invalid store profile %s: %w", path, err)
	}
	return profile, nil
}

// MaxPrecision is the scale of every stored amount column.
const MaxPrecision int32 = 4

// Validate checks the profile is usable by the reconciler and the formatter.
func (p StoreProfile) Validate() error {
	if _, err := currency.ParseISO(p.CurrencyCode); err != nil {
		return fmt.Errorf("currency_code %q: %w", p.CurrencyCode, err)
	}
	if _, err := language.Parse(p.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", p.Locale, err)
	}
	if p.Precision < 0 || p.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", MaxPrecision, p.Precision)
	}

	seen := make(map[domain.PaymentMethodID]bool, len(p.PaymentMethods))
	for _, m := range p.PaymentMethods {
		if m.ID == "" {
			return errors.New("payment method with empty id")
		}
		if seen[m.ID] {
			return fmt.Errorf("payment method %q listed twice", m.ID)
		}
		seen[m.ID] = true
	}
	if !seen[domain.CashMethod] {
		return fmt.Errorf("payment method %q is required", domain.CashMethod)
	}
	return nil
}

// MethodIDs returns the configured payment methods in display order.
func (p StoreProfile) MethodIDs() []domain.PaymentMethodID {
	ids := make([]domain.PaymentMethodID, len(p.PaymentMethods))
	for i, m := range p.PaymentMethods {
		ids[i] = m.ID
	}
	return ids
}

// MethodLabel returns the display label of a method, or its id when unconfigured.
func (p StoreProfile) MethodLabel(id domain.PaymentMethodID) string {
	for _, m := range p.PaymentMethods {
		if m.ID == id && m.Label != "" {
			return m.Label
		}
	}
	return string(id)
}
