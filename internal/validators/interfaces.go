// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming account, project, campaign and asset
// requests before they reach the services.
//
// Validators return sentinel errors whose messages are safe to show to API
// clients. Validation can be scoped to a subset of fields by passing field
// names to Validate.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
