package main

import (
	"context"   // Context for Redis and shutdown
	"errors"    // Server closed detection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal handling
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"bet_wallet/internal/account"    // Account service
	"bet_wallet/internal/api"        // HTTP handlers
	"bet_wallet/internal/config"     // Configuration
	"bet_wallet/internal/db"         // Database setup
	"bet_wallet/internal/ledger"     // Account ledger
	"bet_wallet/internal/settlement" // Bet settlement
	"bet_wallet/internal/utils"      // Redis cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	database, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	// Tables are created on boot; AutoMigrate is idempotent
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	opts := []ledger.Option{ledger.WithTimeout(cfg.LedgerTimeout)}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		opts = append(opts, ledger.WithCache(utils.NewCache(redisClient, cfg.CacheTTL)))
	} else {
		logrus.Warn("REDIS_ADDR not set, balance cache disabled")
	}

	accounts := account.NewService(database, cfg.JWTSecret, cfg.JWTTTL)
	l := ledger.New(ledger.NewGormStore(database), opts...)
	engine := settlement.NewEngine(l, settlement.RandomSampler(), nil)

	router := api.NewRouter(api.Deps{
		Accounts: accounts,
		Ledger:   l,
		Engine:   engine,
		Health: func() error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.Ping()
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", srv.Addr).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// In-flight ledger units finish or roll back before the process exits
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("shutdown failed: %v", err)
	}
	logrus.Info("Server stopped")
}
