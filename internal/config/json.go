package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same layout is accepted as JSON (.json) and YAML (.yaml, .yml).
type StructuredFileConfig struct {
	App struct {
		DeviceID string `json:"device_id" yaml:"device_id"`
		HashKey  string `json:"hash_key" yaml:"hash_key"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Sync struct {
		ReconnectDebounce Duration `json:"reconnect_debounce" yaml:"reconnect_debounce"`
		Interval          Duration `json:"interval" yaml:"interval"`
		ProbeInterval     Duration `json:"probe_interval" yaml:"probe_interval"`
		RemoteTimeout     Duration `json:"remote_timeout" yaml:"remote_timeout"`
		MaxRetries        int      `json:"max_retries" yaml:"max_retries"`
		HistoryLimit      int      `json:"history_limit" yaml:"history_limit"`
		RetentionHorizon  Duration `json:"retention_horizon" yaml:"retention_horizon"`
		RetentionInterval Duration `json:"retention_interval" yaml:"retention_interval"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`

	Log struct {
		Level      string `json:"level" yaml:"level"`
		File       string `json:"file" yaml:"file"`
		MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups"`
		MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}

	cfg := &StructuredConfig{
		App: App{
			DeviceID: fileCfg.App.DeviceID,
			HashKey:  fileCfg.App.HashKey,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Sync: Sync{
			ReconnectDebounce: time.Duration(fileCfg.Sync.ReconnectDebounce),
			Interval:          time.Duration(fileCfg.Sync.Interval),
			ProbeInterval:     time.Duration(fileCfg.Sync.ProbeInterval),
			RemoteTimeout:     time.Duration(fileCfg.Sync.RemoteTimeout),
			MaxRetries:        fileCfg.Sync.MaxRetries,
			HistoryLimit:      fileCfg.Sync.HistoryLimit,
			RetentionHorizon:  time.Duration(fileCfg.Sync.RetentionHorizon),
			RetentionInterval: time.Duration(fileCfg.Sync.RetentionInterval),
		},
		Log: Log{
			Level:      fileCfg.Log.Level,
			File:       fileCfg.Log.File,
			MaxSizeMB:  fileCfg.Log.MaxSizeMB,
			MaxBackups: fileCfg.Log.MaxBackups,
			MaxAgeDays: fileCfg.Log.MaxAgeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
