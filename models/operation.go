// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// OperationType is the kind of local change recorded in the mutation queue.
type OperationType string

const (
	OpCreate OperationType = "create"
	OpUpdate OperationType = "update"
	OpDelete OperationType = "delete"
)

// Valid reports whether t is a known operation type.
func (t OperationType) Valid() bool {
	switch t {
	case OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

// ParseOperationType converts s into an [OperationType].
func ParseOperationType(s string) (OperationType, error) {
	t := OperationType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown operation type %q", s)
	}
	return t, nil
}

// Validation errors returned by [MutationOperation.Validate].
var (
	ErrUnknownEntityKind    = errors.New("unknown entity kind")
	ErrUnknownOperationType = errors.New("unknown operation type")
	ErrEmptyEntityID        = errors.New("entity id is empty")
	ErrMissingPayload       = errors.New("create/update operation requires a payload")
	ErrUnexpectedPayload    = errors.New("delete operation must not carry a payload")
	ErrPayloadKindMismatch  = errors.New("payload does not match operation entity kind")
)

// MutationOperation is one pending local change awaiting upload.
//
// Values are built through [NewCreate], [NewUpdate] and [NewDelete] so that a
// Delete never carries a payload and Create/Update always carry a snapshot of
// the entity at enqueue time.
type MutationOperation struct {
	// ID is the queue row identifier assigned on enqueue.
	ID int64 `json:"id"`

	Type     OperationType `json:"type"`
	Kind     EntityKind    `json:"kind"`
	EntityID string        `json:"entity_id"`

	// Payload is the serialized entity, absent for deletes.
	Payload json.RawMessage `json:"payload,omitempty"`

	EnqueuedAt time.Time `json:"enqueued_at"`

	// RetryCount is incremented on every failed upload attempt.
	RetryCount int     `json:"retry_count"`
	LastError  *string `json:"last_error,omitempty"`

	Synced   bool       `json:"synced"`
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// NewCreate builds a Create operation carrying a snapshot of entity.
func NewCreate(entity Entity) (MutationOperation, error) {
	return newUpsert(OpCreate, entity)
}

// NewUpdate builds an Update operation carrying a snapshot of entity.
func NewUpdate(entity Entity) (MutationOperation, error) {
	return newUpsert(OpUpdate, entity)
}

// NewDelete builds a Delete operation that carries only the entity id.
func NewDelete(kind EntityKind, entityID string) (MutationOperation, error) {
	op := MutationOperation{Type: OpDelete, Kind: kind, EntityID: entityID}
	return op, op.Validate()
}

func newUpsert(opType OperationType, entity Entity) (MutationOperation, error) {
	if entity == nil {
		return MutationOperation{}, ErrMissingPayload
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return MutationOperation{}, fmt.Errorf("encode %s payload: %w", entity.Kind(), err)
	}

	op := MutationOperation{
		Type:     opType,
		Kind:     entity.Kind(),
		EntityID: entity.EntityID(),
		Payload:  payload,
	}
	return op, op.Validate()
}

// NewRawOperation builds an operation from an already serialized payload, as
// received from callers that do not hold a typed entity (e.g. the CLI).
func NewRawOperation(opType OperationType, kind EntityKind, entityID string, payload json.RawMessage) (MutationOperation, error) {
	op := MutationOperation{Type: opType, Kind: kind, EntityID: entityID}
	if len(payload) > 0 {
		op.Payload = payload
	}
	return op, op.Validate()
}

// Validate checks the structural invariants of the operation.
func (op MutationOperation) Validate() error {
	if !op.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEntityKind, op.Kind)
	}
	if !op.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperationType, op.Type)
	}
	if op.EntityID == "" {
		return ErrEmptyEntityID
	}

	switch op.Type {
	case OpDelete:
		if len(op.Payload) > 0 {
			return ErrUnexpectedPayload
		}
	default:
		if len(op.Payload) == 0 {
			return ErrMissingPayload
		}
		if !json.Valid(op.Payload) {
			return fmt.Errorf("%w: payload is not valid json", ErrMissingPayload)
		}
	}

	return nil
}

// IsDelete reports whether the operation removes the entity.
func (op MutationOperation) IsDelete() bool {
	return op.Type == OpDelete
}

// DecodePayload decodes the operation payload into a typed entity.
func DecodePayload[T Entity](op MutationOperation) (T, error) {
	var entity T
	if op.IsDelete() {
		return entity, ErrUnexpectedPayload
	}
	if err := json.Unmarshal(op.Payload, &entity); err != nil {
		return entity, fmt.Errorf("decode %s payload: %w", op.Kind, err)
	}
	if entity.Kind() != op.Kind {
		return entity, ErrPayloadKindMismatch
	}
	return entity, nil
}

// OperationIDs returns the queue ids of ops in order.
func OperationIDs(ops []MutationOperation) []int64 {
	ids := make([]int64, 0, len(ops))
	for _, op := range ops {
		ids = append(ids, op.ID)
	}
	return ids
}
