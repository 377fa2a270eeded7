package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/config"
	"github.com/yeremiapane/restaurant-site/database"
	"github.com/yeremiapane/restaurant-site/metrics"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/router"
	"github.com/yeremiapane/restaurant-site/storage"
	"github.com/yeremiapane/restaurant-site/utils"
)

const usage = `usage:
  restaurant-site                     start the web server
  restaurant-site grant-admin <email> give a registered user the admin role`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}

	if len(os.Args) > 1 {
		switch {
		case os.Args[1] == "grant-admin" && len(os.Args) == 3:
			if err := database.GrantAdmin(context.Background(), db, os.Args[2]); err != nil {
				utils.ErrorLogger.Fatal(err)
			}
			return
		default:
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var revocations utils.RevocationStore
	redisClient, err := config.InitRedis(ctx, cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		revocations = utils.NewRedisRevocationStore(redisClient)
	} else {
		utils.InfoLogger.Warn("REDIS_URL not set, signed-out tokens are tracked in memory")
		memory := utils.NewMemoryRevocationStore()
		go every(ctx, time.Hour, func(time.Time) { memory.Cleanup() })
		revocations = memory
	}

	bucket, err := storage.New(cfg.StorageBackend, cfg.StorageDir, cfg.PublicBaseURL, storage.MenuImagesBucket)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open storage: %v", err)
	}

	limiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	go every(ctx, time.Minute, limiter.Sweep)
	authLimiter := middlewares.NewStrictRateLimiter(cfg.AuthRateBurst, cfg.AuthRateWindow)
	go every(ctx, time.Minute, authLimiter.Sweep)

	r := router.SetupRouter(router.Deps{
		DB:            db,
		Config:        cfg,
		Revocations:   revocations,
		Bucket:        bucket,
		Metrics:       metrics.New(),
		GlobalLimiter: limiter,
		AuthLimiter:   authLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("shutdown: %v", err)
	}
}

func every(ctx context.Context, d time.Duration, fn func(time.Time)) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(now)
		}
	}
}
