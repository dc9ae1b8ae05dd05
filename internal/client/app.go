package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dict-keeper/internal/adapter"
	"github.com/MKhiriev/go-dict-keeper/internal/config"
	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/service"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/internal/tui"
	"github.com/MKhiriev/go-dict-keeper/internal/workers"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// App is the client process: the dictionary provider plus the terminal
// browser reading from it.
type App struct {
	storages *store.ClientStorages
	provider *Provider
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the client. The returned App owns the snapshot storage and
// releases it when Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg, buildInfo)

	connectivity := workers.NewConnectivity()
	ws := workers.NewWorkers(
		workers.NewConnectivityProbe(serverAdapter, connectivity, cfg.Workers.ProbeInterval, log),
		// Provider.Start has synced already
		workers.NewRefreshScheduler(services.IncrementalSynchronizer, connectivity, cfg.Workers.CheckInterval, log,
			workers.WithRunImmediately(false)),
	)

	provider := NewProvider(storages.Records, services, ws, cfg.Cache.PreloadTypes, log)

	ui, err := tui.New(provider, buildInfo, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		provider: provider,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run starts the provider, shows the browser and stops everything once the
// user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing client storages")
		}
	}()

	if err := a.provider.Start(ctx); err != nil {
		return fmt.Errorf("start dictionary provider: %w", err)
	}
	defer a.provider.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client exited")
	return nil
}
