package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	internalTypes "github.com/budgetview/budgetview-go/internal/types"
	"github.com/budgetview/budgetview-go/pkg/budgetview"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := loadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	client, err := budgetview.NewClient(&budgetview.ClientOptions{
		BaseURL:   cfg.BackendURL,
		Token:     cfg.Token,
		Logger:    &slogAdapter{logger: logger},
		SentryDSN: cfg.SentryDSN,
		RetryConfig: &internalTypes.RetryConfig{
			MaxRetries: 3,
			RetryWait:  500 * time.Millisecond,
			MaxWait:    5 * time.Second,
		},
	})
	if err != nil {
		logger.Error("failed to create backend client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	store := NewStore(client, logger)

	// Initial fetch; the dashboard serves whatever arrives, empty state on failure
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Refresh(ctx); err != nil {
		logger.Warn("initial refresh incomplete", "error", err)
	}
	cancel()

	srv := &server{
		cfg:    cfg,
		store:  store,
		cache:  newResponseCache(cfg.RedisAddr, cfg.CacheTTL),
		logger: logger,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	srv.routes(router)

	logger.Info("dashboard listening", "addr", cfg.Addr, "backend", cfg.BackendURL)
	if err := router.Run(cfg.Addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
