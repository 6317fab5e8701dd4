// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/models"
)

// tokenCookieName is the cookie consulted when no Authorization header is
// sent.
const tokenCookieName = "token"

// userAuth admits any signed-in user.
func (h *Handler) userAuth(next http.Handler) http.Handler {
	return h.gate(models.RoleOrdinary, next)
}

// adminAuth admits administrators only.
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return h.gate(models.RoleAdministrator, next)
}

// gate is the access gate in front of protected routes.
//
// The raw token is taken from the "Authorization: Bearer <token>" header or,
// when the header is absent, from the "token" cookie. The token is resolved
// to its user by [service.AuthService.Authorize], which also enforces the
// required role. On success the user is stored in the request context with
// [utils.WithCurrentUser]; every failure answers with the enveloped error
// (401 for missing, expired or unknown identities, 403 for a missing role).
func (h *Handler) gate(required models.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Err(err).Msg("malformed credentials")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authorize(ctx, tokenString, required)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = logger.WithUserID(ctx, user.ID)
		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

// tokenFromRequest returns the raw token of r or an empty string when r
// carries none.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}
	if cookie, err := r.Cookie(tokenCookieName); err == nil {
		return cookie.Value, nil
	}
	return "", nil
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "Bearer <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the header has no token
// part or a scheme other than Bearer, and [ErrEmptyToken] when the token
// part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
