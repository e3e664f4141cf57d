// Package application provides the application interface for
// rostersync commands.
//
// Commands accept this interface rather than the concrete App type so
// they can be exercised with mock implementations in tests.
package application

import (
	"github.com/rs/zerolog"

	"github.com/dutywire/rostersync/pkg/reconcile"
)

// Application provides the dependencies commands need: identification,
// logging, and the lazily constructed reconciliation engine.
type Application interface {
	// Version returns the build version string.
	Version() string

	// Logger returns the application logger.
	Logger() *zerolog.Logger

	// Reconciler returns the reconciliation engine, constructing it
	// (and its gateway clients) from configuration on first use.
	Reconciler() (*reconcile.Reconciler, error)
}

// Mock implements Application with pluggable functions for tests.
type Mock struct {
	VersionFunc    func() string
	LoggerFunc     func() *zerolog.Logger
	ReconcilerFunc func() (*reconcile.Reconciler, error)
}

// Version implements Application.
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Logger implements Application.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Reconciler implements Application.
func (m *Mock) Reconciler() (*reconcile.Reconciler, error) {
	if m.ReconcilerFunc != nil {
		return m.ReconcilerFunc()
	}
	return nil, nil
}
