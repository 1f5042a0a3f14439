// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// BatchOperation is the wire form of one queued operation inside a sync batch.
type BatchOperation struct {
	Type     OperationType   `json:"type"`
	EntityID string          `json:"entity_id"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// SyncBatchRequest is sent to the remote bulk sync endpoint of one kind.
// Operations keep the queue order.
type SyncBatchRequest struct {
	DeviceID   string           `json:"device_id"`
	Kind       EntityKind       `json:"kind"`
	Operations []BatchOperation `json:"operations"`
	Length     int              `json:"length"`
}

// NewSyncBatchRequest converts queued operations into a batch request. Deletes
// are sent with their id only.
func NewSyncBatchRequest(deviceID string, kind EntityKind, ops []MutationOperation) SyncBatchRequest {
	batch := make([]BatchOperation, 0, len(ops))
	for _, op := range ops {
		bo := BatchOperation{Type: op.Type, EntityID: op.EntityID}
		if !op.IsDelete() {
			bo.Payload = op.Payload
		}
		batch = append(batch, bo)
	}

	return SyncBatchRequest{
		DeviceID:   deviceID,
		Kind:       kind,
		Operations: batch,
		Length:     len(batch),
	}
}

// SyncBatchResponse describes what the server accepted from a batch.
type SyncBatchResponse struct {
	AcceptedCount int                    `json:"accepted_count"`
	Snapshots     []RemoteEntitySnapshot `json:"snapshots,omitempty"`
}

// FetchAllResponse is returned by the remote full download endpoint.
type FetchAllResponse struct {
	Snapshots []RemoteEntitySnapshot `json:"snapshots"`
}
