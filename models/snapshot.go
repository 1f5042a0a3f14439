// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RemoteEntitySnapshot is the authoritative server-side representation of an
// entity returned after a sync call or a full download.
//
// After a sync call only the server-derived fields (ServerUpdatedAt, ImageURL)
// are applied locally. Data carries the full entity and is used by the initial
// bootstrap alone.
type RemoteEntitySnapshot struct {
	Kind            EntityKind      `json:"kind"`
	EntityID        string          `json:"entity_id"`
	ServerUpdatedAt time.Time       `json:"server_updated_at"`
	ImageURL        *string         `json:"image_url,omitempty"`
	Deleted         bool            `json:"deleted,omitempty"`
	Data            json.RawMessage `json:"data,omitempty"`
}

// EntityRow is a locally stored entity together with its sync metadata.
type EntityRow struct {
	Kind     EntityKind
	EntityID string

	// Payload is the user-authored document.
	Payload json.RawMessage

	// Server-derived fields, overwritten only from snapshots.
	ServerUpdatedAt *time.Time
	ImageURL        *string

	// SyncedAt is set when the server confirmed the row.
	SyncedAt *time.Time

	UpdatedAt time.Time
}
