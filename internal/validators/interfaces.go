// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Two validators are provided: [NewRecordValidator] checks synchronized
// records and their domain payloads (games, play sessions) and is used both by
// the CLI before a local write and by the server before a push is accepted;
// [NewRequestValidator] checks the auth and relationship request bodies.
//
// Validate accepts optional field names to restrict validation to a subset
// of the rules of the given type.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
