// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PassSource tells which engine operation produced a history record.
type PassSource string

const (
	SourceSync      PassSource = "sync"
	SourceBootstrap PassSource = "bootstrap"
)

// SyncPassRecord is one entry of the sync history log.
type SyncPassRecord struct {
	// ID is the pass start timestamp in Unix nanoseconds. Passes are
	// sequential, so the value is unique and increases with insertion order.
	ID int64 `json:"id"`

	OccurredAt time.Time `json:"occurred_at"`

	// Counts holds the number of operations synced (or rows downloaded) per
	// kind. Zero counts are kept in the record.
	Counts map[EntityKind]int `json:"counts"`

	Source PassSource `json:"source"`
}

// Total sums the per-kind counts.
func (r SyncPassRecord) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// NonZeroCounts returns the kinds with a positive count in [SyncOrder],
// dropping zero-count kinds for display.
func (r SyncPassRecord) NonZeroCounts() []KindCount {
	out := make([]KindCount, 0, len(r.Counts))
	for _, k := range SyncOrder {
		if c := r.Counts[k]; c > 0 {
			out = append(out, KindCount{Kind: k, Count: c})
		}
	}
	return out
}

// KindCount pairs a kind with a count for ordered display.
type KindCount struct {
	Kind  EntityKind
	Count int
}

// SyncStatus is the outcome of a full sync pass.
type SyncStatus string

const (
	StatusCompleted      SyncStatus = "completed"
	StatusFailed         SyncStatus = "failed"
	StatusSkippedOffline SyncStatus = "skipped_offline"
	StatusUnauthorized   SyncStatus = "unauthorized"
)

// KindResult is the outcome of one reconciliation pass for one kind.
type KindResult struct {
	Kind   EntityKind `json:"kind"`
	Synced int        `json:"synced"`
	Err    error      `json:"-"`
}

// OK reports whether the kind reconciled without error.
func (r KindResult) OK() bool {
	return r.Err == nil
}

// SyncResult aggregates a full sync pass.
type SyncResult struct {
	Status     SyncStatus                `json:"status"`
	StartedAt  time.Time                 `json:"started_at"`
	FinishedAt time.Time                 `json:"finished_at"`
	PerKind    map[EntityKind]KindResult `json:"per_kind,omitempty"`
}

// Success reports whether every kind reconciled.
func (r SyncResult) Success() bool {
	return r.Status == StatusCompleted
}

// Skipped reports whether the pass did no work because the device was offline.
func (r SyncResult) Skipped() bool {
	return r.Status == StatusSkippedOffline
}

// Total sums synced counts across kinds.
func (r SyncResult) Total() int {
	total := 0
	for _, kr := range r.PerKind {
		total += kr.Synced
	}
	return total
}

// Counts returns the per-kind synced counts, including zeros.
func (r SyncResult) Counts() map[EntityKind]int {
	counts := make(map[EntityKind]int, len(r.PerKind))
	for k, kr := range r.PerKind {
		counts[k] = kr.Synced
	}
	return counts
}

// BootstrapResult describes an initial bootstrap run.
type BootstrapResult struct {
	Downloaded map[EntityKind]int `json:"downloaded"`

	// Skipped lists kinds that already had local rows and were left alone.
	Skipped []EntityKind `json:"skipped,omitempty"`
}

// Total sums downloaded rows across kinds.
func (r BootstrapResult) Total() int {
	total := 0
	for _, c := range r.Downloaded {
		total += c
	}
	return total
}
