// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Validator is the single abstraction: it validates a value and may be
// scoped to a subset of named fields. [NewEntityValidator] checks the POS
// entities before they are committed locally and queued for upload.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may check structure as well as cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
