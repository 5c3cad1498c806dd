package services

import (
	"fmt"

	"github.com/SscSPs/pos_shift_app/internal/apperrors"
	"github.com/SscSPs/pos_shift_app/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// requestValidator reads the same `binding` tags gin uses, so requests coming from
// the CLI get the checks HTTP requests get.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

func validateID(kind, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: %s ID %q is not a valid UUID", apperrors.ErrValidation, kind, id)
	}
	return nil
}

// maxStoredAmount is the first magnitude a NUMERIC(18,4) column cannot hold.
var maxStoredAmount = decimal.New(1, 14)

func validateAmount(field string, amount decimal.Decimal, precision int32) error {
	if amount.Abs().GreaterThanOrEqual(maxStoredAmount) {
		return fmt.Errorf("%w: %s %s must be less than %s", apperrors.ErrValidation, field, amount.String(), maxStoredAmount.String())
	}
	if !accounting.FitsPrecision(amount, precision) {
		return fmt.Errorf("%w: %s %s has more than %d decimal places", apperrors.ErrValidation, field, amount.String(), precision)
	}
	return nil
}
