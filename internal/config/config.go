// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All loading functions accept context.Context as the first parameter.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"context"
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the optional Prometheus listen address,
	// e.g. ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// QueueSize bounds the in-memory mapping job queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of mapping workers.
	WorkerCount int `koanf:"worker_count"`

	// MemoSize sets the size of the batch memoization cache.
	MemoSize int `koanf:"memo_size"`

	// FuzzyThreshold is the similarity floor for fuzzy matches, in (0, 1].
	FuzzyThreshold float64 `koanf:"fuzzy_threshold"`

	// SelectionStrategy chooses entries from repeated resume sections:
	// most_recent, longest, highest_degree.
	SelectionStrategy string `koanf:"selection_strategy"`

	// SensitivityWeights overrides per-field sensitivity weights, keyed by
	// canonical field name.
	SensitivityWeights map[string]float64 `koanf:"sensitivity_weights"`
}

// New creates a Config with defaults.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:          "info",
		MetricsAddr:       "",
		QueueSize:         10_000,
		WorkerCount:       runtime.NumCPU() * 2,
		MemoSize:          10_000,
		FuzzyThreshold:    0.7,
		SelectionStrategy: "most_recent",
	}
	return c
}
