package repository

import (
	"context"
	"fundflow-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	// Create inserts the settlement row on tx; payments are append-only.
	Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	FindByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}
