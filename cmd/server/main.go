package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/cdn"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/config"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/es"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/events"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/httpserver"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/repo"
	"github.com/RaghunadhSahitDruvam/vibecart/internal/service"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/db"
	"github.com/RaghunadhSahitDruvam/vibecart/pkg/logging"
	loggingmw "github.com/RaghunadhSahitDruvam/vibecart/pkg/middleware/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	r := repo.New(database)
	if err := r.Migrate(); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	var producer events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers)
	}

	var indexer *es.ProductIndexer
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		indexer = &es.ProductIndexer{Client: esClient, Index: es.ProductIndex}
	}

	var cdnClient *cdn.Client
	if cfg.CDNBaseURL != "" {
		cdnClient = cdn.NewClient(cfg.CDNBaseURL, cfg.CDNKey, cfg.CDNSecret)
	}

	userSvc := &service.UserService{Repo: r, Producer: producer}
	cartSvc := &service.CartService{Repo: r, Producer: producer}
	couponSvc := &service.CouponService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}
	checkoutSvc := service.NewCheckoutService(r, couponSvc, orderSvc, producer)
	catalogSvc := &service.CatalogService{Repo: r, Indexer: indexer}
	contentSvc := &service.ContentService{Repo: r, CDN: cdnClient}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		CartHandler:     &httpserver.CartHTTP{Svc: cartSvc, Users: userSvc},
		CheckoutHandler: &httpserver.CheckoutHTTP{Svc: checkoutSvc, Users: userSvc},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc},
		CatalogHandler:  &httpserver.CatalogHTTP{Svc: catalogSvc},
		ContentHandler:  &httpserver.ContentHTTP{Svc: contentSvc},
		CouponHandler:   &httpserver.CouponHTTP{Repo: r},
		WebhookHandler:  &httpserver.WebhookHTTP{Users: userSvc, Secret: cfg.WebhookSecret},
		IdentitySecret:  cfg.IdentitySecret,
		AdminAPIKey:     cfg.AdminAPIKey,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "service", cfg.ServiceName, "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
