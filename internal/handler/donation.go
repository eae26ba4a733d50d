package handler

import (
	"errors"
	"fundflow-backend/internal/dto"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type DonationHandler struct {
	donationService service.DonationService
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func (h *DonationHandler) RecordIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var donor model.DonorInfo
	if err := c.Bind(&donor); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.donationService.RecordIntent(ctx, &donor); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.InsertResult{
		Acknowledged: true,
		InsertedID:   donor.ID,
	})
}

func (h *DonationHandler) PendingByEmail(c echo.Context) error {
	ctx := c.Request().Context()
	email := c.Param("email")

	donors, err := h.donationService.PendingByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, donors)
}

func (h *DonationHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid req body"})
	}

	clientSecret, err := h.donationService.CreatePaymentIntent(ctx, req.AmountInCents)
	if err != nil {
		if errors.Is(err, service.ErrAmountRequired) {
			return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "Amount is required"})
		}
		return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, &dto.PaymentIntentResponse{ClientSecret: clientSecret})
}

func (h *DonationHandler) Finalize(c echo.Context) error {
	ctx := c.Request().Context()

	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.donationService.Finalize(ctx, &payment)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *DonationHandler) PaymentsByEmail(c echo.Context) error {
	ctx := c.Request().Context()
	email := c.Param("email")

	payments, err := h.donationService.PaymentsByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}
