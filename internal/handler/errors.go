// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when SERVER_ADDRESS resolves to
// an empty listen address.
var errNoHTTPAddress = errors.New("no HTTP address configured")
