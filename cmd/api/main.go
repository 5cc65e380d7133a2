package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ethela-storefront/internal/config"
	"ethela-storefront/internal/db"
	"ethela-storefront/internal/httpserver"
	"ethela-storefront/internal/jobs"
	"ethela-storefront/internal/logging"
	blogrepo "ethela-storefront/internal/repository/blog"
	certrepo "ethela-storefront/internal/repository/certificate"
	contactrepo "ethela-storefront/internal/repository/contact"
	productrepo "ethela-storefront/internal/repository/product"
	sessionrepo "ethela-storefront/internal/repository/session"
	userrepo "ethela-storefront/internal/repository/user"
	blogsvc "ethela-storefront/internal/service/blog"
	catalogsvc "ethela-storefront/internal/service/catalog"
	contactsvc "ethela-storefront/internal/service/contact"
	identitysvc "ethela-storefront/internal/service/identity"
	verificationsvc "ethela-storefront/internal/service/verification"
	"go.uber.org/zap"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Mode: cfg.LogMode, File: cfg.LogFile, Name: "api"})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}
	if cfg.UsesDefaultJWTSecret() {
		logger.Warn("JWT_SECRET not set, signing sessions with the development secret")
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	blogRepo := blogrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	sessionRepo := sessionrepo.NewPostgres(dbpool)
	certRepo := certrepo.NewPostgres(dbpool)
	contactRepo := contactrepo.NewPostgres(dbpool)

	identityService := identitysvc.New(userRepo, sessionRepo, identitysvc.Options{
		Secret:      []byte(cfg.JWTSecret),
		SessionTTL:  cfg.SessionTTL,
		AdminEmails: cfg.AdminEmails,
	}, logger)

	scheduler := jobs.New(logger)
	if err := scheduler.AddSessionPurge(cfg.SessionPurgeSchedule, identityService); err != nil {
		logger.Fatal("init jobs", zap.Error(err))
	}
	scheduler.Start()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:      catalogsvc.New(productRepo, logger),
		Blogs:        blogsvc.New(blogRepo, cfg.BlogDefaultAuthor, logger),
		Identity:     identityService,
		Verification: verificationsvc.New(certRepo, logger),
		Contact:      contactsvc.New(contactRepo, logger),
	}, httpserver.Options{CORSAllowOrigins: cfg.CORSAllowOrigins})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	scheduler.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}
