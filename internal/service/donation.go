package service

import (
	"context"
	"errors"
	"fmt"
	"fundflow-backend/internal/client"
	"fundflow-backend/internal/dto"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/repository"

	"gorm.io/gorm"
)

// ErrAmountRequired rejects a payment-intent request before the processor is
// ever contacted.
var ErrAmountRequired = errors.New("amount is required")

type DonationService interface {
	RecordIntent(ctx context.Context, donor *model.DonorInfo) error
	PendingByEmail(ctx context.Context, email string) ([]*model.DonorInfo, error)
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
	Finalize(ctx context.Context, payment *model.Payment) (*dto.FinalizeResponse, error)
	PaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type donationServiceImpl struct {
	db            *gorm.DB
	stripeClient  client.StripeClient
	donorInfoRepo repository.DonorInfoRepository
	paymentRepo   repository.PaymentRepository
}

func NewDonationService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	donorInfoRepo repository.DonorInfoRepository,
	paymentRepo repository.PaymentRepository,
) DonationService {
	return &donationServiceImpl{
		db:            db,
		stripeClient:  stripeClient,
		donorInfoRepo: donorInfoRepo,
		paymentRepo:   paymentRepo,
	}
}

// RecordIntent appends a pending intent. No dedup: a donor who submits twice
// has two pending rows until a payment for their email settles.
func (s *donationServiceImpl) RecordIntent(ctx context.Context, donor *model.DonorInfo) error {
	if err := s.donorInfoRepo.Create(ctx, donor); err != nil {
		return fmt.Errorf("insert donor info: %w", err)
	}
	return nil
}

func (s *donationServiceImpl) PendingByEmail(ctx context.Context, email string) ([]*model.DonorInfo, error) {
	return s.donorInfoRepo.FindByEmail(ctx, email)
}

// CreatePaymentIntent has no persistent side effect of its own: it either
// hands back the processor's client secret or fails with nothing written.
func (s *donationServiceImpl) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	if amountInCents == 0 {
		return "", ErrAmountRequired
	}

	clientSecret, err := s.stripeClient.CreatePaymentIntent(ctx, amountInCents)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return clientSecret, nil
}

// Finalize writes the settlement row and clears every pending intent for the
// payment's email as one transaction, so a donor is never left both settled
// and pending.
func (s *donationServiceImpl) Finalize(ctx context.Context, payment *model.Payment) (*dto.FinalizeResponse, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		n, err := s.donorInfoRepo.DeleteByEmail(ctx, tx, payment.Email)
		if err != nil {
			return fmt.Errorf("clear pending donor info: %w", err)
		}
		deleted = n

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.FinalizeResponse{
		InsertResult: dto.InsertResult{Acknowledged: true, InsertedID: payment.ID},
		DeleteResult: dto.DeleteResult{Acknowledged: true, DeletedCount: deleted},
	}, nil
}

func (s *donationServiceImpl) PaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}
