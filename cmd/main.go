package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"adwallet/db/migrations"
	"adwallet/internal/adapter/http"
	"adwallet/internal/adapter/memory"
	"adwallet/internal/adapter/postgres"
	"adwallet/internal/adapter/usecase"
	"adwallet/internal/config"
	"adwallet/internal/config/configs"
	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
	"adwallet/internal/db"
)

// main loads configuration, wires the selected storage into the funding
// use case and serves the HTTP API until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	if err = run(cfg, logger); err != nil {
		logger.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

type adapters struct {
	ledger  port.Ledger
	store   port.CampaignStore
	catalog port.Catalog
	recon   port.ReconciliationLog
	tx      port.Transactor
	health  func(context.Context) error
	close   func()
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		a   adapters
		err error
	)
	switch cfg.Storage {
	case config.StorageMemory:
		a = memoryAdapters(cfg.Funding)
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		if a, err = postgresAdapters(ctx, cfg, logger); err != nil {
			return err
		}
	}
	defer a.close()

	opts := useCaseOptions(cfg.Funding)
	opts.Transactor = a.tx
	svc := usecase.NewFundingUseCase(a.ledger, a.store, a.catalog, a.recon, logger, opts)
	handler := httpadapter.NewHandler(svc, logger, httpadapter.WithHealthCheck(a.health))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

func memoryAdapters(cfg configs.Funding) adapters {
	return adapters{
		ledger: memory.NewLedger(cfg.InitialBalance, cfg.Currency),
		store:  memory.NewCampaignStore(cfg.Currency),
		catalog: memory.NewCatalog(
			named(db.SeedTowns, func(id int64, n string) domain.Town { return domain.Town{ID: id, Name: n} }),
			named(db.SeedProducts, func(id int64, n string) domain.Product { return domain.Product{ID: id, Name: n} }),
			named(db.SeedKeywords, func(id int64, n string) domain.Keyword { return domain.Keyword{ID: id, Name: n} }),
		),
		recon: memory.NewReconciliationLog(),
		close: func() {},
	}
}

func postgresAdapters(ctx context.Context, cfg config.Config, logger *slog.Logger) (adapters, error) {
	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return adapters{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return adapters{}, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return adapters{}, err
		}
		logger.Info("catalog seeded")
	}
	walletID, err := db.EnsureWallet(ctx, pool, cfg.Funding.InitialBalance, cfg.Funding.Currency)
	if err != nil {
		pool.Close()
		return adapters{}, err
	}

	return adapters{
		ledger:  postgres.NewLedger(pool, walletID),
		store:   postgres.NewCampaignRepository(pool, cfg.Funding.Currency),
		catalog: postgres.NewCatalog(pool),
		recon:   postgres.NewReconciliationLog(pool),
		tx:      postgres.NewTransactor(pool, walletID, cfg.Funding.Currency),
		health:  pool.Ping,
		close:   pool.Close,
	}, nil
}

func useCaseOptions(cfg configs.Funding) usecase.Options {
	return usecase.Options{
		Currency:         cfg.Currency,
		OperationTimeout: cfg.OperationTimeout,
		Retry: usecase.RetryPolicy{
			MaxTries:        cfg.Compensation.MaxTries,
			InitialInterval: cfg.Compensation.InitialInterval,
			MaxInterval:     cfg.Compensation.MaxInterval,
			MaxElapsed:      cfg.Compensation.MaxElapsed,
		},
	}
}

// named assigns sequential ids to names, matching what Seed produces on an
// empty database.
func named[T any](names []string, mk func(int64, string) T) []T {
	out := make([]T, len(names))
	for i, n := range names {
		out[i] = mk(int64(i+1), n)
	}
	return out
}
