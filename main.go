package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pratoaberto/api/handlers"
	"github.com/pratoaberto/api/internal/cardapios"
	"github.com/pratoaberto/api/internal/config"
	"github.com/pratoaberto/api/internal/database"
	"github.com/pratoaberto/api/internal/escolas"
	"github.com/pratoaberto/api/pkg/logger"
	"github.com/pratoaberto/api/pkg/metrics"
	"github.com/pratoaberto/api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v editor_key_set=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Editor.APIKey != "")

	r := gin.New()

	// Lightweight CORS middleware: the API is public data consumed by a
	// separate frontend.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, key")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per client IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// One store client for the whole process, reused by every handler.
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, "mongodb://"+cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to create mongo client: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	// cheap probe; a failure is logged only — the driver connects lazily and
	// per-request errors surface as 500s
	mongoUp := true
	if err := database.Ping(ctx, client, cfg.MongoDB.Timeout); err != nil {
		logger.Warnf("mongo not available: %v", err)
		mongoUp = false
	} else {
		logger.Info("mongo connected")
	}

	db := client.Database(cfg.MongoDB.Database)
	cardapiosRepo := cardapios.NewMongoRepo(db.Collection("cardapios"))
	escolasRepo := escolas.NewMongoRepo(db.Collection("escolas"))

	cardapiosSvc := cardapios.NewService(cardapiosRepo)
	escolasSvc := escolas.NewService(escolasRepo, cardapiosRepo)

	handlers.NewEscolasHandler(escolasSvc).Register(r)
	handlers.NewCardapiosHandler(cardapiosSvc).Register(r)
	handlers.NewEditorHandler(cardapiosSvc).Register(r, cfg.Editor.APIKey)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when the store answers a ping
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{"mongo": mongoUp, "redis": redisClient != nil || cfg.Redis.Host == ""}
		if err := database.Ping(c.Request.Context(), client, 2*time.Second); err != nil {
			deps["mongo"] = false
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		deps["mongo"] = true
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting pratoaberto API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
