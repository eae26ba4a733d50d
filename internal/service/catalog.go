package service

import (
	"context"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/repository"
)

// CatalogService is plain read-through (plus review submission); no
// invariants beyond returning what is stored.
type CatalogService interface {
	ListCampaigns(ctx context.Context) ([]*model.Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error)
	ListReviews(ctx context.Context) ([]*model.Review, error)
	CreateReview(ctx context.Context, review *model.Review) error
}

type catalogServiceImpl struct {
	campaignRepo repository.CampaignRepository
	reviewRepo   repository.ReviewRepository
}

func NewCatalogService(
	campaignRepo repository.CampaignRepository,
	reviewRepo repository.ReviewRepository,
) CatalogService {
	return &catalogServiceImpl{
		campaignRepo: campaignRepo,
		reviewRepo:   reviewRepo,
	}
}

func (s *catalogServiceImpl) ListCampaigns(ctx context.Context) ([]*model.Campaign, error) {
	return s.campaignRepo.List(ctx)
}

func (s *catalogServiceImpl) GetCampaign(ctx context.Context, campaignID string) (*model.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, campaignID)
}

func (s *catalogServiceImpl) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *catalogServiceImpl) CreateReview(ctx context.Context, review *model.Review) error {
	return s.reviewRepo.Create(ctx, review)
}
