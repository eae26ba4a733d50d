package service

import (
	"context"
	"errors"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
)

func newDonationService(t *testing.T, stripe *fakeStripeClient) DonationService {
	t.Helper()
	db := newTestDB(t)
	return NewDonationService(
		db,
		stripe,
		repository.NewDonorInfoRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func TestDonationService_CreatePaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		amount     int64
		stripe     *fakeStripeClient
		wantSecret string
		wantErr    error
		wantCalls  int
	}{
		{
			name:       "valid amount returns client secret",
			amount:     500,
			stripe:     &fakeStripeClient{secret: "pi_123_secret_456"},
			wantSecret: "pi_123_secret_456",
			wantCalls:  1,
		},
		{
			name:      "zero amount rejected before processor call",
			amount:    0,
			stripe:    &fakeStripeClient{secret: "pi_123_secret_456"},
			wantErr:   ErrAmountRequired,
			wantCalls: 0,
		},
		{
			name:      "processor failure surfaces",
			amount:    500,
			stripe:    &fakeStripeClient{err: errors.New("card declined")},
			wantErr:   nil, // wrapped, checked by message below
			wantCalls: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := newDonationService(t, test.stripe)

			secret, err := svc.CreatePaymentIntent(context.Background(), test.amount)

			require.Equal(t, test.wantCalls, test.stripe.calls)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				return
			}
			if test.stripe.err != nil {
				require.ErrorContains(t, err, "card declined")
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.wantSecret, secret)
		})
	}
}

func TestDonationService_RecordIntent_NoDedup(t *testing.T) {
	svc := newDonationService(t, &fakeStripeClient{})
	ctx := context.Background()

	require.NoError(t, svc.RecordIntent(ctx, &model.DonorInfo{Email: "a@x.com", Amount: 10}))
	require.NoError(t, svc.RecordIntent(ctx, &model.DonorInfo{Email: "a@x.com", Amount: 10}))

	pending, err := svc.PendingByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, pending, 2)
}

func TestDonationService_Finalize_ClearsPending(t *testing.T) {
	svc := newDonationService(t, &fakeStripeClient{})
	ctx := context.Background()

	require.NoError(t, svc.RecordIntent(ctx, &model.DonorInfo{Email: "b@x.com", Amount: 20}))
	require.NoError(t, svc.RecordIntent(ctx, &model.DonorInfo{Email: "b@x.com", Amount: 5}))
	// another donor's intent must survive the finalize below
	require.NoError(t, svc.RecordIntent(ctx, &model.DonorInfo{Email: "other@x.com", Amount: 7}))

	result, err := svc.Finalize(ctx, &model.Payment{Email: "b@x.com", Amount: 25})
	require.NoError(t, err)
	require.True(t, result.InsertResult.Acknowledged)
	require.NotEmpty(t, result.InsertResult.InsertedID)
	require.Equal(t, int64(2), result.DeleteResult.DeletedCount)

	pending, err := svc.PendingByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	require.Empty(t, pending)

	otherPending, err := svc.PendingByEmail(ctx, "other@x.com")
	require.NoError(t, err)
	require.Len(t, otherPending, 1)

	payments, err := svc.PaymentsByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, int64(25), payments[0].Amount)
}

func TestDonationService_Finalize_NotIdempotent(t *testing.T) {
	svc := newDonationService(t, &fakeStripeClient{})
	ctx := context.Background()

	_, err := svc.Finalize(ctx, &model.Payment{Email: "a@x.com", Amount: 10})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, &model.Payment{Email: "a@x.com", Amount: 10})
	require.NoError(t, err)

	payments, err := svc.PaymentsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, payments, 2)
}

func TestDonationService_Finalize_NoPending(t *testing.T) {
	svc := newDonationService(t, &fakeStripeClient{})
	ctx := context.Background()

	result, err := svc.Finalize(ctx, &model.Payment{Email: "nobody@x.com", Amount: 1})
	require.NoError(t, err)
	require.Equal(t, int64(0), result.DeleteResult.DeletedCount)
	require.True(t, result.InsertResult.Acknowledged)
}
