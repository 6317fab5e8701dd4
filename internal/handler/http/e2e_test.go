// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-cms/internal/cache"
	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/service"
	"github.com/MKhiriev/course-cms/internal/store"
	"github.com/MKhiriev/course-cms/models"
)

// newSQLiteHandler wires the real services over a migrated in-memory
// database with one administrator account.
func newSQLiteHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := store.NewConnectSQLite(ctx, config.DBConfig{
		Driver: string(store.DialectSQLite),
		DSN:    "file:" + name + "?mode=memory&cache=shared",
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	services, err := service.NewServices(store.NewRepositories(db, log), cache.Nop{}, config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "e2e-secret",
			TokenIssuer:   "course-cms",
			TokenDuration: time.Hour,
			Version:       "e2e",
		},
	}, log)
	require.NoError(t, err)
	require.NoError(t, services.UserService.EnsureAdministrator(ctx, "admin@example.com", "adminpass"))

	return NewHandler(services, 0, log)
}

func signInAs(t *testing.T, h *Handler, path, login, password string) string {
	t.Helper()
	rr := serve(h, http.MethodPost, path, fmt.Sprintf(`{"login":%q,"password":%q}`, login, password))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var token string
	decodeField(t, decodeResponse(t, rr), "token", &token)
	require.NotEmpty(t, token)
	return token
}

func createEntity(t *testing.T, h *Handler, token, path, key, body string) int64 {
	t.Helper()
	rr := serve(h, http.MethodPost, path, body, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		ID int64 `json:"id"`
	}
	decodeField(t, decodeResponse(t, rr), key, &created)
	require.Positive(t, created.ID)
	return created.ID
}

func TestSQLite_AccessGate(t *testing.T) {
	h := newSQLiteHandler(t)

	rr := serve(h, http.MethodPost, "/auth/sign_up",
		`{"email":"student@example.com","username":"student","nickname":"Student","password":"secret1","role":100}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var user models.User
	decodeField(t, decodeResponse(t, rr), "user", &user)
	assert.Equal(t, models.RoleOrdinary, user.Role)
	assert.NotContains(t, rr.Body.String(), "passwordHash")

	studentToken := signInAs(t, h, "/auth/sign_in", "student", "secret1")

	rr = serve(h, http.MethodGet, "/users/me", "", "Authorization", "Bearer "+studentToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodGet, "/admin/users", "", "Authorization", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(h, http.MethodPost, "/admin/auth/sign_in", `{"login":"student","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = serve(h, http.MethodGet, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(h, http.MethodPost, "/auth/sign_in", `{"login":"student","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	adminToken := signInAs(t, h, "/admin/auth/sign_in", "admin@example.com", "adminpass")
	rr = serve(h, http.MethodGet, "/admin/users?currentPage=1&pageSize=1", "", "Authorization", "Bearer "+adminToken)
	require.Equal(t, http.StatusOK, rr.Code)
	var pagination models.Pagination
	decodeField(t, decodeResponse(t, rr), "pagination", &pagination)
	assert.Equal(t, int64(2), pagination.Total)
	assert.Equal(t, 1, pagination.PageSize)
}

func TestSQLite_HierarchicalDeletes(t *testing.T) {
	h := newSQLiteHandler(t)
	token := signInAs(t, h, "/admin/auth/sign_in", "admin", "adminpass")
	auth := []string{"Authorization", "Bearer " + token}

	rr := serve(h, http.MethodGet, "/users/me", "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)
	var admin models.User
	decodeField(t, decodeResponse(t, rr), "user", &admin)

	categoryID := createEntity(t, h, token, "/admin/categories", "category", `{"name":"Backend","rank":1}`)
	courseID := createEntity(t, h, token, "/admin/courses", "course",
		fmt.Sprintf(`{"categoryId":%d,"userId":%d,"name":"Go basics"}`, categoryID, admin.ID))
	chapterID := createEntity(t, h, token, "/admin/chapters", "chapter",
		fmt.Sprintf(`{"courseId":%d,"title":"Hello, Go","rank":1}`, courseID))

	rr = serve(h, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", categoryID), "", auth...)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, decodeResponse(t, rr).Message, "1 dependent records")

	rr = serve(h, http.MethodDelete, fmt.Sprintf("/admin/courses/%d", courseID), "", auth...)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = serve(h, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodDelete, fmt.Sprintf("/admin/chapters/%d", chapterID), "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = serve(h, http.MethodDelete, fmt.Sprintf("/admin/courses/%d", courseID), "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = serve(h, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", categoryID), "", auth...)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(h, http.MethodGet, fmt.Sprintf("/courses/%d", courseID), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
