// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the POS sync
// client. It is populated by merging values from command-line flags,
// environment variables, an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds device identity and payload integrity settings.
	App App `envPrefix:"POS_APP_"`

	// Adapter holds the remote sync endpoint settings.
	Adapter Adapter `envPrefix:"POS_ADAPTER_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"POS_STORAGE_"`

	// Sync holds trigger policy, retry and retention settings.
	Sync Sync `envPrefix:"POS_SYNC_"`

	// Log holds log level and rotation settings.
	Log Log `envPrefix:"POS_LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the POS_CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"POS_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceID overrides the device identity persisted in the local store.
	// When empty a UUIDv7 is generated once and stored.
	// Env: POS_APP_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`

	// HashKey is the HMAC key used to sign outgoing sync batches
	// (HashSHA256 header). Signing is disabled when empty.
	// Env: POS_APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Adapter holds settings for the remote sync client.
type Adapter struct {
	// HTTPAddress is the base address of the remote sync service
	// (e.g. "https://pos.example.com" or "localhost:8080").
	// Env: POS_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP request to the remote service.
	// Env: POS_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path, optionally with driver parameters
	// (e.g. "pos.db" or "file:pos.db?_busy_timeout=10000").
	// Env: POS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the sync engine policy.
type Sync struct {
	// ReconnectDebounce is the delay between an offline→online transition and
	// the triggered sync pass.
	// Env: POS_SYNC_RECONNECT_DEBOUNCE
	ReconnectDebounce time.Duration `env:"RECONNECT_DEBOUNCE"`

	// Interval is the period of the safety-net background sync job.
	// Env: POS_SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// ProbeInterval is how often the connectivity prober pings the remote.
	// Env: POS_SYNC_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// RemoteTimeout bounds one reconciler's remote batch call.
	// Env: POS_SYNC_REMOTE_TIMEOUT
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT"`

	// MaxRetries is the retry count from which an operation is reported as
	// stuck. Stuck operations are still retried.
	// Env: POS_SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// HistoryLimit is the number of sync history records retained.
	// Env: POS_SYNC_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`

	// RetentionHorizon is the age after which synced operations are pruned.
	// Env: POS_SYNC_RETENTION_HORIZON
	RetentionHorizon time.Duration `env:"RETENTION_HORIZON"`

	// RetentionInterval is the period of the retention sweep.
	// Env: POS_SYNC_RETENTION_INTERVAL
	RetentionInterval time.Duration `env:"RETENTION_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: POS_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the rotated log file. Logs go to stdout when empty.
	// Env: POS_LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size at which the log file is rotated.
	// Env: POS_LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`

	// MaxBackups is the number of rotated files kept.
	// Env: POS_LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`

	// MaxAgeDays is the number of days rotated files are kept.
	// Env: POS_LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Defaults returns the built-in configuration used for every field left empty
// by the other sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: "pos.db"}},
		Sync: Sync{
			ReconnectDebounce: 2 * time.Second,
			Interval:          5 * time.Minute,
			ProbeInterval:     10 * time.Second,
			RemoteTimeout:     30 * time.Second,
			MaxRetries:        10,
			HistoryLimit:      20,
			RetentionHorizon:  30 * 24 * time.Hour,
			RetentionInterval: time.Hour,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. For every field the first non-zero value wins, in this order:
//  1. Command-line flags registered on fs by [RegisterFlags]
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
