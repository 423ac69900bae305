package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/hindsightlabs/mortgage-irr/internal/config"
	"github.com/hindsightlabs/mortgage-irr/internal/handler"
	"github.com/hindsightlabs/mortgage-irr/internal/middleware"
	"github.com/hindsightlabs/mortgage-irr/internal/repository"
	"github.com/hindsightlabs/mortgage-irr/internal/service"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Pick the cache backend
	var cache repository.Cache
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		logger.Infof("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
		logger.Info("Using in-memory cache")
	}

	// Initialize layers
	svc := service.NewService(cache, logger)
	h := handler.NewHandler(svc, cfg.TermYears, logger)

	// Scheduled cache flush
	c := cron.New()
	if _, err := c.AddFunc(cfg.CacheFlushSchedule, func() {
		if err := cache.Flush(); err != nil {
			logger.Errorf("Cache flush failed: %v", err)
			return
		}
		logger.Info("Cache flushed")
	}); err != nil {
		logger.Fatalf("Invalid CACHE_FLUSH_SCHEDULE: %v", err)
	}
	c.Start()
	defer c.Stop()

	limiter := middleware.NewRateLimiter(60, time.Minute)
	defer limiter.Stop()

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Handle("/investment", middleware.RateLimit(limiter, http.HandlerFunc(h.Investment))).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
