package repository

import (
	"context"
	"fundflow-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorInfoRepository interface {
	Create(ctx context.Context, donor *model.DonorInfo) error
	FindByEmail(ctx context.Context, email string) ([]*model.DonorInfo, error)
	// DeleteByEmail removes every pending intent for the email and reports
	// how many rows went away. Runs on tx so finalize can pair it with the
	// settlement insert.
	DeleteByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
}

type donorInfoRepoImpl struct {
	db *gorm.DB
}

func NewDonorInfoRepository(db *gorm.DB) DonorInfoRepository {
	return &donorInfoRepoImpl{
		db: db,
	}
}

func (r *donorInfoRepoImpl) Create(ctx context.Context, donor *model.DonorInfo) error {
	if donor.ID == "" {
		donor.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorInfoRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.DonorInfo, error) {
	var donors []*model.DonorInfo
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&donors).Error

	if err != nil {
		return nil, err
	}

	return donors, nil
}

func (r *donorInfoRepoImpl) DeleteByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("email = ?", email).
		Delete(&model.DonorInfo{})

	return result.RowsAffected, result.Error
}
