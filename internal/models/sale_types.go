package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingIdentifier   = errors.New("missing identifier")
	ErrAmbiguousIdentifier = errors.New("both barcode and name set")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SaleRequest identifies the sold product either by barcode or by name, never both.
type SaleRequest struct {
	Barcode string `json:"barcode,omitempty" validate:"required_without=Name,excluded_with=Name"`
	Name    string `json:"name,omitempty" validate:"required_without=Barcode,excluded_with=Barcode"`
	Amount  int    `json:"amount" validate:"min=1"`
}

// Validate checks the barcode XOR name rule and the amount through the struct
// tags. An invalid amount wins over identifier problems.
func (r SaleRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var result error
	for _, fe := range fieldErrs {
		switch {
		case fe.Field() == "Amount":
			return ErrInvalidAmount
		case fe.Tag() == "excluded_with":
			result = ErrAmbiguousIdentifier
		case fe.Tag() == "required_without" && result == nil:
			result = ErrMissingIdentifier
		}
	}
	if result == nil {
		return err
	}
	return result
}

// ByBarcode reports whether the sale is routed to the barcode-keyed endpoint.
func (r SaleRequest) ByBarcode() bool {
	return r.Barcode != ""
}

// ActionResponse is the {success, message} envelope shared by sale and threshold endpoints.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ThresholdRequest is the body of POST /set_threshold.
type ThresholdRequest struct {
	Threshold int `json:"threshold" binding:"required,min=1"`
}
