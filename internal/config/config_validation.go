// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	s := cfg.Sync
	if s.HistoryLimit <= 0 || s.MaxRetries <= 0 ||
		s.ReconnectDebounce < 0 || s.Interval <= 0 || s.ProbeInterval <= 0 ||
		s.RemoteTimeout <= 0 || s.RetentionHorizon <= 0 || s.RetentionInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}
