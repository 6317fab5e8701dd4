// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/course-cms/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "currentUser", CurrentUserCtxKey.String())
}

func TestCurrentUserFromContext(t *testing.T) {
	user := models.User{ID: 7, Username: "alice", Role: models.RoleAdministrator}
	ctx := WithCurrentUser(context.Background(), user)

	got, ok := CurrentUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestCurrentUserFromContext_Missing(t *testing.T) {
	_, ok := CurrentUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestCurrentUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "alice")

	_, ok := CurrentUserFromContext(ctx)
	assert.False(t, ok)
}
