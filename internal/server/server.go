package server

import (
	"fundflow-backend/internal/handler"
	authmw "fundflow-backend/internal/middleware"
	"fundflow-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	donationHandler *handler.DonationHandler
	catalogHandler  *handler.CatalogHandler

	authService service.AuthService
}

func NewServer(
	authService service.AuthService,
	userService service.UserService,
	donationService service.DonationService,
	catalogService service.CatalogService,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(authService),
		userHandler:     handler.NewUserHandler(userService),
		donationHandler: handler.NewDonationHandler(donationService),
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		authService:     authService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "FundFlow server is running")
	})

	e.POST("/jwt", s.authHandler.IssueToken)

	e.POST("/users", s.userHandler.CreateUser)
	e.GET("/users", s.userHandler.ListUsers,
		authmw.RequireToken(s.authService), authmw.RequireAdmin(s.authService))

	e.GET("/campaigns", s.catalogHandler.ListCampaigns)
	e.GET("/campaigns/:id", s.catalogHandler.GetCampaign)

	// -------- donation lifecycle --------
	e.POST("/donar-info", s.donationHandler.RecordIntent, authmw.RequireToken(s.authService))
	e.GET("/donar-info/:email", s.donationHandler.PendingByEmail)
	e.POST("/create-payment-intent", s.donationHandler.CreatePaymentIntent)
	e.POST("/payment", s.donationHandler.Finalize)
	e.GET("/payment/:email", s.donationHandler.PaymentsByEmail)

	e.GET("/reviews", s.catalogHandler.ListReviews)
	e.POST("/reviews", s.catalogHandler.CreateReview)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
