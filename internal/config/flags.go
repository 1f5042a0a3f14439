package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagConfig            = "config"
	flagAddress           = "address"
	flagRequestTimeout    = "request-timeout"
	flagDSN               = "db"
	flagDeviceID          = "device-id"
	flagHashKey           = "hash-key"
	flagReconnectDebounce = "reconnect-debounce"
	flagSyncInterval      = "sync-interval"
	flagProbeInterval     = "probe-interval"
	flagRemoteTimeout     = "remote-timeout"
	flagMaxRetries        = "max-retries"
	flagLogLevel          = "log-level"
	flagLogFile           = "log-file"
)

// RegisterFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config           json or yaml config file path
//	-a/--address          remote sync service address
//	--request-timeout     http request timeout (e.g. "15s")
//	-d/--db               local SQLite DSN
//	--device-id           device identity override
//	--hash-key            batch signing key
//	--reconnect-debounce  delay before syncing after reconnect (e.g. "2s")
//	--sync-interval       safety-net sync period (e.g. "5m")
//	--probe-interval      connectivity probe period (e.g. "10s")
//	--remote-timeout      per-kind batch call timeout (e.g. "30s")
//	--max-retries         retry count from which operations are reported stuck
//	--log-level           zerolog level
//	--log-file            rotated log file path
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")
	fs.StringP(flagAddress, "a", "", "Remote sync service address")
	fs.Duration(flagRequestTimeout, 0, "HTTP request timeout (e.g., 15s)")
	fs.StringP(flagDSN, "d", "", "Local SQLite DSN")
	fs.String(flagDeviceID, "", "Device identity override")
	fs.String(flagHashKey, "", "Batch signing key")
	fs.Duration(flagReconnectDebounce, 0, "Delay before syncing after reconnect (e.g., 2s)")
	fs.Duration(flagSyncInterval, 0, "Safety-net sync period (e.g., 5m)")
	fs.Duration(flagProbeInterval, 0, "Connectivity probe period (e.g., 10s)")
	fs.Duration(flagRemoteTimeout, 0, "Per-kind batch call timeout (e.g., 30s)")
	fs.Int(flagMaxRetries, 0, "Retry count from which operations are reported stuck")
	fs.String(flagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(flagLogFile, "", "Rotated log file path")
}

// flagsConfig reads the flags registered by [RegisterFlags] from fs. Flags
// that were not registered or not set leave their fields zero.
func flagsConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	r := flagReader{fs: fs}

	cfg.FilePath = r.str(flagConfig)
	cfg.Adapter.HTTPAddress = r.str(flagAddress)
	cfg.Adapter.RequestTimeout = r.duration(flagRequestTimeout)
	cfg.Storage.DB.DSN = r.str(flagDSN)
	cfg.App.DeviceID = r.str(flagDeviceID)
	cfg.App.HashKey = r.str(flagHashKey)
	cfg.Sync.ReconnectDebounce = r.duration(flagReconnectDebounce)
	cfg.Sync.Interval = r.duration(flagSyncInterval)
	cfg.Sync.ProbeInterval = r.duration(flagProbeInterval)
	cfg.Sync.RemoteTimeout = r.duration(flagRemoteTimeout)
	cfg.Sync.MaxRetries = r.int(flagMaxRetries)
	cfg.Log.Level = r.str(flagLogLevel)
	cfg.Log.File = r.str(flagLogFile)

	return cfg, r.err
}

// flagReader collects the first lookup error so flagsConfig stays linear.
type flagReader struct {
	fs  *pflag.FlagSet
	err error
}

func (r *flagReader) changed(name string) bool {
	f := r.fs.Lookup(name)
	return f != nil && f.Changed
}

func (r *flagReader) str(name string) string {
	if !r.changed(name) {
		return ""
	}
	v, err := r.fs.GetString(name)
	r.keep(err)
	return v
}

func (r *flagReader) duration(name string) time.Duration {
	if !r.changed(name) {
		return 0
	}
	v, err := r.fs.GetDuration(name)
	r.keep(err)
	return v
}

func (r *flagReader) int(name string) int {
	if !r.changed(name) {
		return 0
	}
	v, err := r.fs.GetInt(name)
	r.keep(err)
	return v
}

func (r *flagReader) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
