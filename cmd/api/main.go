package main

import (
	"context"
	"fmt"
	"fundflow-backend/internal/client"
	"fundflow-backend/internal/config"
	"fundflow-backend/internal/repository"
	"fundflow-backend/internal/server"
	"fundflow-backend/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabaseURL)
	stripeClient := client.NewStripeClient(&cfg.Stripe)

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	donorInfoRepo := repository.NewDonorInfoRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	authService := service.NewAuthService(cfg.JWT.Secret, cfg.JWT.TTL, userRepo)
	userService := service.NewUserService(userRepo)
	donationService := service.NewDonationService(db, stripeClient, donorInfoRepo, paymentRepo)
	catalogService := service.NewCatalogService(campaignRepo, reviewRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(authService, userService, donationService, catalogService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
