// Package app provides the application context and dependency
// management for the rostersync CLI: configuration, logging, and lazy
// construction of the reconciliation engine and its gateway clients.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dutywire/rostersync/internal/gateway/directory"
	"github.com/dutywire/rostersync/internal/gateway/registry"
	"github.com/dutywire/rostersync/pkg/errors"
	"github.com/dutywire/rostersync/pkg/reconcile"
)

// App represents the rostersync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Reconciler (lazy-initialized, singleton)
	mu         sync.Mutex
	reconciler *reconcile.Reconciler
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Reconciler returns the reconciliation engine, constructing the
// gateway clients from configuration on first use.
func (a *App) Reconciler() (*reconcile.Reconciler, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.reconciler != nil {
		return a.reconciler, nil
	}

	directoryClient, err := directory.New(directory.Config{
		BaseURL: a.config.DirectoryURL,
		PoolID:  a.config.PoolID,
		Token:   a.config.DirectoryToken,
	})
	if err != nil {
		return nil, err
	}

	registryClient, err := registry.New(registry.Config{
		URL:    a.config.RegistryURL,
		APIKey: a.config.RegistryAPIKey,
	})
	if err != nil {
		return nil, err
	}

	a.reconciler = reconcile.New(
		directoryClient,
		registryClient,
		reconcile.Config{TempPassword: a.config.TempPassword},
		reconcile.WithLogger(a.logger),
	)
	return a.reconciler, nil
}
