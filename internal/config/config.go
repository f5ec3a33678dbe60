package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	OrderStoreAddress string
	OrderStoreTimeout time.Duration
	BatchWorkers      int
	ShutdownTimeout   time.Duration
}

const (
	defaultRunAddress        = ":8080"
	defaultOrderStoreTimeout = 10 * time.Second
	defaultBatchWorkers      = 4
	defaultShutdownTimeout   = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		OrderStoreAddress: getString(lookup, "ORDER_STORE_ADDRESS", ""),
		OrderStoreTimeout: getDuration(lookup, "ORDER_STORE_TIMEOUT", defaultOrderStoreTimeout),
		BatchWorkers:      getInt(lookup, "BATCH_WORKERS", defaultBatchWorkers),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("coffeebar-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		storeTimeoutStr    = cfg.OrderStoreTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.OrderStoreAddress, "r", cfg.OrderStoreAddress, "Order store base URL")
	fs.IntVar(&cfg.BatchWorkers, "batch-workers", cfg.BatchWorkers, "Concurrent orders per batch completion")
	fs.StringVar(&storeTimeoutStr, "store-timeout", storeTimeoutStr, "Order store request timeout")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.OrderStoreTimeout, err = time.ParseDuration(storeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid store timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}

	if cfg.OrderStoreTimeout <= 0 {
		cfg.OrderStoreTimeout = defaultOrderStoreTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.OrderStoreAddress == "" {
		return nil, fmt.Errorf("order store address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
