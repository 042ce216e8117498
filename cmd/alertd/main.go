package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/Donchitos/Budgetzz-sub000/internal/app"
	"github.com/Donchitos/Budgetzz-sub000/internal/config"
	"github.com/Donchitos/Budgetzz-sub000/internal/logger"
)

func main() {
	seedPath := flag.String("seed", "", "import a JSON seed document before starting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// No logger yet; exit immediately.
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	// Ensure logger flush; ignore sync error (common on some platforms).
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("app init failed", zap.Error(err))
	}

	if *seedPath != "" {
		f, err := os.Open(*seedPath)
		if err != nil {
			log.Fatal("open seed failed", zap.Error(err))
		}
		err = application.Seed(ctx, f)
		_ = f.Close()
		if err != nil {
			log.Fatal("seed failed", zap.String("path", *seedPath), zap.Error(err))
		}
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal("app run failed", zap.Error(err))
	}
}
