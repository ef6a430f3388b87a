package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/propati/propati/internal/pkg/config"
	"github.com/propati/propati/internal/pkg/database"
	"github.com/propati/propati/internal/pkg/health"
	"github.com/propati/propati/internal/pkg/logger"
	"github.com/propati/propati/internal/pkg/middleware"
	"github.com/propati/propati/internal/pkg/nsq"
	"github.com/propati/propati/internal/pkg/server"

	accounthandler "github.com/propati/propati/services/account/handler"
	accountrepo "github.com/propati/propati/services/account/repository"
	accountuc "github.com/propati/propati/services/account/usecase"
	engagementhandler "github.com/propati/propati/services/engagement/handler"
	engagementrepo "github.com/propati/propati/services/engagement/repository"
	engagementuc "github.com/propati/propati/services/engagement/usecase"
	newslettergw "github.com/propati/propati/services/newsletter/gateway"
	newsletterhandler "github.com/propati/propati/services/newsletter/handler"
	newsletterrepo "github.com/propati/propati/services/newsletter/repository"
	newsletteruc "github.com/propati/propati/services/newsletter/usecase"
	paymentgw "github.com/propati/propati/services/payment/gateway"
	paymenthandler "github.com/propati/propati/services/payment/handler"
	paymentrepo "github.com/propati/propati/services/payment/repository"
	paymentuc "github.com/propati/propati/services/payment/usecase"
)

const serviceName = "marketplace"

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	// PostgreSQL
	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	db := postgresClient.GetDB()

	// Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}

	// NSQ producer is optional; gateways degrade to no-op publishing.
	var producer *nsq.Producer
	if cfg.NSQ.Enabled {
		producer, err = nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			appLogger.WithError(err).Warn("Failed to connect to NSQ, events disabled")
			producer = nil
		}
	}

	// Payment service
	payRepo := paymentrepo.NewPaymentRepo(cfg, db, redisClient)
	payGW := paymentgw.NewPaymentGateway(cfg.Paystack, producer)
	payUC := paymentuc.NewPaymentUC(cfg, payRepo, payGW, appLogger.Logger)
	payHandler := paymenthandler.NewPaymentHandler(payUC, cfg.JWT)

	// Engagement service
	engRepo := engagementrepo.NewEngagementRepo(cfg, db)
	engUC := engagementuc.NewEngagementUC(cfg, engRepo, appLogger.Logger)
	engHandler := engagementhandler.NewEngagementHandler(engUC, cfg.JWT)

	// Newsletter service
	newsRepo := newsletterrepo.NewNewsletterRepo(cfg, db)
	newsGW := newslettergw.NewNewsletterGateway(cfg.Email, producer)
	newsUC := newsletteruc.NewNewsletterUC(cfg, newsRepo, newsGW, appLogger.Logger)
	newsHandler := newsletterhandler.NewNewsletterHandler(newsUC, cfg.APIKey)

	// Account service
	accRepo := accountrepo.NewAccountRepo(cfg, db)
	accUC := accountuc.NewAccountUC(cfg, accRepo, payUC, appLogger.Logger)
	accHandler := accounthandler.NewAccountHandler(accUC, cfg.JWT)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORSMiddleware())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(appLogger.Logger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger.Logger))

	health.RegisterHealthEndpoints(e, serviceName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	payHandler.RegisterRoutes(e)
	engHandler.RegisterRoutes(e)
	newsHandler.RegisterRoutes(e)
	accHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(appLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		if producer != nil {
			producer.Stop()
		}
		return nil
	})

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Error("Server stopped with error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Component shutdown reported errors")
	}
}
