package cmd

import (
	"context"
	"fmt"
	"io"

	accountsrender "github.com/bnema/account-keeper/internal/adapters/render/accounts"
	filestore "github.com/bnema/account-keeper/internal/adapters/storage/file"
	memorystore "github.com/bnema/account-keeper/internal/adapters/storage/memory"
	sqlitestore "github.com/bnema/account-keeper/internal/adapters/storage/sqlite"
	"github.com/bnema/account-keeper/internal/application"
	"github.com/bnema/account-keeper/internal/config"
	"github.com/bnema/account-keeper/internal/domain"
	"github.com/bnema/account-keeper/internal/logging"
	"github.com/bnema/account-keeper/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type app struct {
	store              *application.AccountStore
	logger             *log.Logger
	accountsRenderer   func([]domain.Account, accountsrender.RenderOptions) (string, error)
	validationRenderer func(domain.ValidationErrors) (string, error)
	closeStorage       func() error
}

func wireApp(ctx context.Context, cfg *viper.Viper, logOutput io.Writer) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := config.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logOutput, settings.Verbose)
	if settings.ConfigFile != "" {
		logger.Debug("using config file", "path", settings.ConfigFile)
	}

	kv, closeStorage, err := openStorage(ctx, settings.Storage)
	if err != nil {
		return nil, fmt.Errorf("wire storage: %w", err)
	}
	logger.Debug("opened storage", "backend", settings.Storage.Backend, "path", settings.Storage.Path)

	store, err := application.NewAccountStore(ctx, kv,
		application.WithLogger(logger),
		application.WithStorageKey(settings.Storage.Key),
	)
	if err != nil {
		_ = closeStorage()
		return nil, fmt.Errorf("wire account store: %w", err)
	}

	return &app{
		store:              store,
		logger:             logger,
		accountsRenderer:   accountsrender.Render,
		validationRenderer: accountsrender.RenderValidation,
		closeStorage:       closeStorage,
	}, nil
}

func openStorage(ctx context.Context, settings config.Storage) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch settings.Backend {
	case config.BackendFile:
		return filestore.NewStore(settings.Path), noop, nil
	case config.BackendSQLite:
		store, err := sqlitestore.Open(ctx, settings.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.BackendMemory:
		return memorystore.NewStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnsupportedBackend, settings.Backend)
	}
}

func (a *app) close() error {
	if a == nil || a.closeStorage == nil {
		return nil
	}

	return a.closeStorage()
}
