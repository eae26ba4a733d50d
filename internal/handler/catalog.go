package handler

import (
	"errors"
	"fundflow-backend/internal/dto"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListCampaigns(c echo.Context) error {
	ctx := c.Request().Context()

	campaigns, err := h.catalogService.ListCampaigns(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, campaigns)
}

func (h *CatalogHandler) GetCampaign(c echo.Context) error {
	ctx := c.Request().Context()
	campaignID := c.Param("id")

	campaign, err := h.catalogService.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "campaign not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, campaign)
}

func (h *CatalogHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.catalogService.ListReviews(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *CatalogHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var review model.Review
	if err := c.Bind(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.catalogService.CreateReview(ctx, &review); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.InsertResult{
		Acknowledged: true,
		InsertedID:   review.ID,
	})
}
