package services

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var ErrInvalidPrice = errors.New("price must be positive")

// PaymentGateway creates payment intents with the card processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// StripeGateway is the production PaymentGateway.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidPrice
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
