package checkout

import (
	"errors"
	"fmt"
	"strings"

	"storefront-api/cart"
	"storefront-api/models"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingCardFields = errors.New("please fill in all card details")
	ErrMissingUpiID      = errors.New("please enter UPI ID")
	ErrUnknownMethod     = errors.New("unknown payment method")
	ErrEmptyCart         = errors.New("please add items to your cart before checkout")
	ErrMissingAddress    = errors.New("please select a delivery address")
)

type cardFields struct {
	Number string `validate:"required"`
	Expiry string `validate:"required"`
	CVV    string `validate:"required"`
	Name   string `validate:"required"`
}

type upiFields struct {
	ID string `validate:"required"`
}

// Validator checks method-specific payment input before submission.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks form against method and builds the payment request for
// the cart snapshot. It never mutates cart or order state.
func (val *Validator) Validate(method models.PaymentMethod, form models.PaymentForm, snap cart.Snapshot, address string) (models.PaymentRequest, error) {
	switch method {
	case models.MethodCard:
		card := cardFields{
			Number: strings.TrimSpace(form.CardNumber),
			Expiry: strings.TrimSpace(form.Expiry),
			CVV:    strings.TrimSpace(form.CVV),
			Name:   strings.TrimSpace(form.CardName),
		}
		if err := val.v.Struct(card); err != nil {
			return models.PaymentRequest{}, fmt.Errorf("%w: %s", ErrMissingCardFields, missingFields(err))
		}
	case models.MethodUPI:
		if err := val.v.Struct(upiFields{ID: strings.TrimSpace(form.UPIID)}); err != nil {
			return models.PaymentRequest{}, ErrMissingUpiID
		}
	case models.MethodWallet, models.MethodCOD:
	default:
		return models.PaymentRequest{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return models.PaymentRequest{}, ErrMissingAddress
	}

	items := make([]models.CartLine, len(snap.Lines))
	copy(items, snap.Lines)
	return models.PaymentRequest{
		Amount:  snap.Totals.GrandTotal,
		Method:  method,
		Items:   items,
		Address: address,
	}, nil
}

func missingFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return strings.Join(names, ", ")
}
