// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the field-level input rules for notes and user
// registration.
//
// Validators are stateless: they check the shape of a payload only. Rules
// that need storage (owner existence, username uniqueness) belong to the
// service layer, which wraps the errors returned here into its own error
// kinds.
package validators

import "context"

// Validator checks a payload and optionally restricts the check to the
// named fields. With no fields every rule for the payload type is applied.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
