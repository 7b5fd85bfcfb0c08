// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMalformedBody is returned when the request body is not valid JSON
	// for the expected shape.
	ErrMalformedBody = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path or query identifier is missing or
	// not a positive integer.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrCSRFTokenMismatch is returned when a state-changing request carries
	// the anti-forgery cookie without echoing it in the header.
	ErrCSRFTokenMismatch = errors.New("invalid CSRF token")
)
