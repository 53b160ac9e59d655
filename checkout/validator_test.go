package checkout

import (
	"errors"
	"testing"

	"storefront-api/cart"
	"storefront-api/models"

	"github.com/shopspring/decimal"
)

func cartWith(price string, qty int) cart.Snapshot {
	l := cart.NewLedger()
	l.AddItem(models.CartLine{ID: "tea", Name: "Masala Tea", UnitPrice: decimal.RequireFromString(price), Quantity: qty})
	return l.Snapshot()
}

func TestValidate(t *testing.T) {
	full := models.PaymentForm{CardNumber: "4111 1111 1111 1111", Expiry: "12/30", CVV: "123", CardName: "A Person"}
	tests := []struct {
		name   string
		method models.PaymentMethod
		form   models.PaymentForm
		want   error
	}{
		{"card all empty", models.MethodCard, models.PaymentForm{}, ErrMissingCardFields},
		{"card whitespace cvv", models.MethodCard, models.PaymentForm{CardNumber: "4111", Expiry: "12/30", CVV: "   ", CardName: "A"}, ErrMissingCardFields},
		{"card complete", models.MethodCard, full, nil},
		{"upi empty", models.MethodUPI, models.PaymentForm{UPIID: " "}, ErrMissingUpiID},
		{"upi card number is not an id", models.MethodUPI, models.PaymentForm{CardNumber: "name@bank"}, ErrMissingUpiID},
		{"upi ok", models.MethodUPI, models.PaymentForm{UPIID: "name@bank"}, nil},
		{"wallet", models.MethodWallet, models.PaymentForm{}, nil},
		{"cod", models.MethodCOD, models.PaymentForm{}, nil},
		{"unknown", models.PaymentMethod("barter"), models.PaymentForm{}, ErrUnknownMethod},
	}
	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.method, tt.form, cartWith("100", 2), "Home - 123 Main Street")
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_BuildsRequest(t *testing.T) {
	snap := cartWith("100", 2)
	req, err := NewValidator().Validate(models.MethodCOD, models.PaymentForm{}, snap, "Home")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !req.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("amount = %s, want 250", req.Amount)
	}
	if req.Method != models.MethodCOD || req.Address != "Home" {
		t.Errorf("request = %+v", req)
	}
	if len(req.Items) != 1 || req.Items[0].Quantity != 2 {
		t.Errorf("items = %+v", req.Items)
	}

	req.Items[0].Quantity = 99
	if snap.Lines[0].Quantity != 2 {
		t.Error("request items alias the cart snapshot")
	}
}

func TestValidate_ReportsMissingCardFields(t *testing.T) {
	_, err := NewValidator().Validate(models.MethodCard, models.PaymentForm{CardNumber: "4111", CardName: "A"}, cartWith("1", 1), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "please fill in all card details: expiry, cvv"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

func TestValidate_RequiresAddress(t *testing.T) {
	_, err := NewValidator().Validate(models.MethodWallet, models.PaymentForm{}, cartWith("1", 1), " ")
	if !errors.Is(err, ErrMissingAddress) {
		t.Errorf("err = %v, want ErrMissingAddress", err)
	}
}
