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
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	NotifyBrokerURL string
	NotifyExchange  string
	WorkerPoolSize  int
	NotifyBuffer    int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultNotifyExchange  = "order_events"
	defaultWorkerPoolSize  = 4
	defaultNotifyBuffer    = 256
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		NotifyBrokerURL: getString(lookup, "NOTIFY_BROKER_URL", ""),
		NotifyExchange:  getString(lookup, "NOTIFY_EXCHANGE", defaultNotifyExchange),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		NotifyBuffer:    getInt(lookup, "NOTIFY_BUFFER_SIZE", defaultNotifyBuffer),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("orderflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&cfg.NotifyBrokerURL, "notify-broker", cfg.NotifyBrokerURL, "RabbitMQ URL for order events (empty disables broker)")
	fs.StringVar(&cfg.NotifyExchange, "notify-exchange", cfg.NotifyExchange, "Exchange name for order events")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent notification workers")
	fs.IntVar(&cfg.NotifyBuffer, "notify-buffer", cfg.NotifyBuffer, "Notification event buffer size")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.NotifyBuffer <= 0 {
		cfg.NotifyBuffer = defaultNotifyBuffer
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.NotifyExchange == "" {
		cfg.NotifyExchange = defaultNotifyExchange
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
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
