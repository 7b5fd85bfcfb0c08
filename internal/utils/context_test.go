// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "set by auth middleware",
			ctx:    WithUserID(context.Background(), 42),
			wantID: 42,
			wantOK: true,
		},
		{
			name: "anonymous request",
			ctx:  context.Background(),
		},
		{
			name: "wrong value type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, "42"),
		},
		{
			name: "plain string key does not collide",
			ctx:  context.WithValue(context.Background(), "userID", int64(42)), //nolint:staticcheck
		},
		{
			name:   "inner value wins",
			ctx:    WithUserID(WithUserID(context.Background(), 1), 2),
			wantID: 2,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}
