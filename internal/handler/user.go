package handler

import (
	"fundflow-backend/internal/dto"
	"fundflow-backend/internal/model"
	"fundflow-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.userService.CreateUser(ctx, &user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.InsertResult{
		Acknowledged: true,
		InsertedID:   user.ID,
	})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}
