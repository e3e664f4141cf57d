package reconcile

import "github.com/rs/zerolog"

// Config carries process-wide settings the engine needs at
// construction. Keeping this explicit (rather than reading ambient
// state) lets the reconcilers run against fake gateways in tests.
type Config struct {
	// TempPassword is the temporary credential for newly created
	// directory accounts.
	TempPassword string
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for per-record progress lines.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// RunOptions configure a single reconciliation run.
type RunOptions struct {
	// DryRun reports per-record intent without any gateway calls.
	DryRun bool
}

// RunOption configures a run.
type RunOption func(*RunOptions)

// WithDryRun toggles dry-run mode for a run.
func WithDryRun(dryRun bool) RunOption {
	return func(o *RunOptions) {
		o.DryRun = dryRun
	}
}

// newRunOptions applies run options over defaults.
func newRunOptions(opts ...RunOption) *RunOptions {
	options := &RunOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
