// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/course-cms/internal/service"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "scheme is case-insensitive", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "blank token", header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestGate(t *testing.T) {
	admin := models.User{ID: 1, Username: "admin", Role: models.RoleAdministrator}

	tests := []struct {
		name       string
		required   models.Role
		header     string
		cookie     string
		setup      func(m *serviceMocks)
		wantStatus int
		wantUser   bool
	}{
		{
			name:     "no credentials",
			required: models.RoleOrdinary,
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "", models.RoleOrdinary).
					Return(models.User{}, service.ErrAuthenticationRequired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header never reaches the service",
			required:   models.RoleOrdinary,
			header:     "Token abc",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "expired token",
			required: models.RoleOrdinary,
			header:   "Bearer expired",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "expired", models.RoleOrdinary).
					Return(models.User{}, service.ErrTokenIsExpired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "ordinary user on admin route",
			required: models.RoleAdministrator,
			header:   "Bearer user-token",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "user-token", models.RoleAdministrator).
					Return(models.User{}, service.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:     "token from cookie",
			required: models.RoleAdministrator,
			cookie:   "cookie-token",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "cookie-token", models.RoleAdministrator).
					Return(admin, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:     "header wins over cookie",
			required: models.RoleOrdinary,
			header:   "Bearer header-token",
			cookie:   "cookie-token",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Authorize(gomock.Any(), "header-token", models.RoleOrdinary).
					Return(admin, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			var gotUser models.User
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUser, _ = utils.CurrentUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			h.gate(tt.required, next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUser, called)
			if tt.wantUser {
				assert.Equal(t, admin, gotUser)
			} else {
				assert.False(t, decodeResponse(t, rr).Status)
			}
		})
	}
}

func TestUserAndAdminGroups(t *testing.T) {
	h, m := newTestHandler(t)
	user := models.User{ID: 7, Username: "alice", Role: models.RoleOrdinary}

	m.auth.EXPECT().Authorize(gomock.Any(), "tok", models.RoleOrdinary).Return(user, nil)
	rr := serve(h, http.MethodGet, "/users/me", "", "Authorization", "Bearer tok")
	assert.Equal(t, http.StatusOK, rr.Code)

	m.auth.EXPECT().Authorize(gomock.Any(), "tok", models.RoleAdministrator).Return(models.User{}, service.ErrForbidden)
	rr = serve(h, http.MethodGet, "/admin/users", "", "Authorization", "Bearer tok")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
