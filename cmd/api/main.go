package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"mosaic-mind/internal/catalog"
	"mosaic-mind/internal/config"
	apihttp "mosaic-mind/internal/http"
	"mosaic-mind/internal/llm"
	"mosaic-mind/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Dos clientes sobre la misma API: modelo corto para rasgos por
	// categoría, modelo más capaz para el insight narrativo.
	traitsClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, 300, logger)
	insightsClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMInsightsModel, 1500, logger)

	enrichmentSvc := service.NewEnrichmentService(traitsClient, insightsClient, logger)
	profileSvc := service.NewProfileService(enrichmentSvc, catalog.Questions(), logger)

	limiter := service.NewProfileRateLimiter(time.Minute, cfg.RateLimitPerMin)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory rate limiter", zap.Error(err))
		} else {
			limiter = service.NewRedisProfileRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMin)
		}
		cancel()
	}

	profileHandler := apihttp.NewProfileHandler(logger, profileSvc, limiter, cfg.ShareBaseURL)
	router := apihttp.NewRouter(logger, profileHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
