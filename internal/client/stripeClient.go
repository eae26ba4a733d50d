package client

import (
	"context"
	"fmt"
	"fundflow-backend/internal/config"

	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
)

// StripeClient is the processor boundary: it turns an amount into a payment
// intent the frontend can confirm with the card element.
type StripeClient interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
}

type stripeClientImpl struct {
	api      *stripeclient.API
	currency string
}

func NewStripeClient(stripeCfg *config.Stripe) StripeClient {
	api := &stripeclient.API{}
	api.Init(stripeCfg.SecretKey, nil)

	return &stripeClientImpl{
		api:      api,
		currency: stripeCfg.Currency,
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return "", fmt.Errorf("stripe payment intent: %s", stripeErr.Msg)
		}
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
