package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"ethela-storefront/internal/config"
	"ethela-storefront/internal/db"
	"ethela-storefront/internal/importer"
	"ethela-storefront/internal/logging"
	productrepo "ethela-storefront/internal/repository/product"
	catalogsvc "ethela-storefront/internal/service/catalog"
	"go.uber.org/zap"
)

func main() {
	var (
		filePath string
		dryRun   bool
	)
	flag.StringVar(&filePath, "file", "", "Path to a product CSV (name,description,price,image_url,blockchain_url,featured)")
	flag.BoolVar(&dryRun, "dry-run", false, "Validate rows without writing")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Mode: cfg.LogMode, File: cfg.LogFile, Name: "importer"})
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

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	catalog := catalogsvc.New(productrepo.NewPostgres(pool, logger), logger)
	imp := importer.NewCSVImporter(f, catalog, logger).DryRun(dryRun)

	start := time.Now()
	res, err := imp.Run(ctx)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err), zap.Int("imported", res.Imported))
	}

	for _, skipped := range res.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %v\n", skipped)
	}
	fmt.Printf("Imported %d products (%d skipped) in %s\n", res.Imported, len(res.Skipped), time.Since(start).Truncate(time.Millisecond))
}
