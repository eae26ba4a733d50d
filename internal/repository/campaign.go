package repository

import (
	"context"
	"fundflow-backend/internal/model"

	"gorm.io/gorm"
)

type CampaignRepository interface {
	FindByID(ctx context.Context, campaignID string) (*model.Campaign, error)
	List(ctx context.Context) ([]*model.Campaign, error)
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepoImpl{
		db: db,
	}
}

func (r *campaignRepoImpl) FindByID(ctx context.Context, campaignID string) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ?", campaignID).
		First(&campaign).Error

	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

func (r *campaignRepoImpl) List(ctx context.Context) ([]*model.Campaign, error) {
	var campaigns []*model.Campaign
	err := r.db.WithContext(ctx).Find(&campaigns).Error
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}
