package main

import (
	"context"

	"ethela-storefront/internal/config"
	"ethela-storefront/internal/db"
	"ethela-storefront/internal/logging"
	"ethela-storefront/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Mode: cfg.LogMode, File: cfg.LogFile, Name: "seed"})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	opts := seed.Options{AdminEmail: cfg.AdminEmail, AdminPassword: cfg.AdminPassword}
	if err := seed.Apply(ctx, pool, opts, logger); err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied")
}
