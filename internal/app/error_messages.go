// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains client-facing message strings shared by the HTTP
// handlers and middleware of the brand-snap server.
//
// Keeping them in one place ensures consistent wording throughout the API;
// browser clients match on some of them.
package app

const (
	// MsgInvalidCredentials is returned by a failed username/password login.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUsernameExists is returned when registering a taken username.
	MsgUsernameExists = "Username already exists"

	// MsgEmailExists is returned when registering a taken email.
	MsgEmailExists = "Email already exists"

	// MsgGoogleAuthFailed prefixes every rejected federated login.
	MsgGoogleAuthFailed = "Google authentication failed: "

	// MsgInvalidCredentialFormat is returned when the Google credential is
	// not a three-segment token with a JSON payload.
	MsgInvalidCredentialFormat = "Invalid credential format"

	// MsgCredentialMissingEmail is returned when the Google credential has
	// no email claim.
	MsgCredentialMissingEmail = "Could not extract email from credential"

	// MsgImageGenerationFailed is returned when synthesis errors are
	// surfaced instead of masked with the placeholder.
	MsgImageGenerationFailed = "Image generation failed"
)
