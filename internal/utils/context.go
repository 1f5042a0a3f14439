// Package utils provides general-purpose helper utilities used across the
// sync client: context keys, payload hashing, the HTTP client, JWT helpers
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TriggerCtxKey is the key under which the reason of a sync pass is stored.
var TriggerCtxKey = contextKey("syncTrigger")

// Sync triggers.
const (
	TriggerReconnect = "reconnect"
	TriggerEnqueue   = "enqueue"
	TriggerManual    = "manual"
	TriggerPeriodic  = "periodic"
)

// WithTrigger returns a copy of ctx carrying the sync trigger name.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, TriggerCtxKey, trigger)
}

// GetTriggerFromContext retrieves the sync trigger stored by WithTrigger.
//
// Returns the trigger and an ok flag:
//   - ok == true: value is found and is a string
//   - ok == false: value is missing or has an unexpected type
func GetTriggerFromContext(ctx context.Context) (string, bool) {
	trigger, ok := ctx.Value(TriggerCtxKey).(string)
	return trigger, ok
}
