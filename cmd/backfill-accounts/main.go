// Command backfill-accounts creates the missing profile of every identity
// that has none, for example identities registered while the lifecycle
// handler was down. It is safe to run repeatedly.
//
// Exit codes: 0 = success, 1 = error or some profiles could not be created.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres"
	accountrepo "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/account"
	identityrepo "github.com/bipbipboopboop/ielts-progressor/internal/adapter/postgres/identity"
	"github.com/bipbipboopboop/ielts-progressor/internal/app"
	"github.com/bipbipboopboop/ielts-progressor/internal/config"
	"github.com/bipbipboopboop/ielts-progressor/internal/service/account"
)

func main() {
	batchSize := flag.Int("batch", 500, "identities examined per batch")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall time limit")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := account.NewService(logger, accountrepo.New(pool), identityrepo.New(pool))

	res, err := svc.Backfill(ctx, *batchSize)
	if err != nil {
		logger.Error("backfill failed",
			slog.String("error", err.Error()),
			slog.Int("scanned", res.Scanned),
			slog.Int("created", res.Created),
		)
		os.Exit(1)
	}

	logger.Info("backfill completed",
		slog.Int("scanned", res.Scanned),
		slog.Int("created", res.Created),
		slog.Int("failed", res.Failed),
	)

	if res.Failed > 0 {
		os.Exit(1)
	}
}
