// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var request models.SignUpRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.SignUp(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", user.ID).Msg("user signed up")
	writeSuccess(w, r, http.StatusCreated, "user created", envelope{"user": user})
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	h.issueToken(w, r, false)
}

func (h *Handler) adminSignIn(w http.ResponseWriter, r *http.Request) {
	h.issueToken(w, r, true)
}

// issueToken verifies the posted credentials and answers with a token. The
// token is also set in the Authorization header and the token cookie.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, admin bool) {
	ctx := r.Context()

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	signIn := h.services.AuthService.SignIn
	if admin {
		signIn = h.services.AuthService.AdminSignIn
	}

	token, err := signIn(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", token.UserID).Bool("admin", admin).Msg("user signed in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeSuccess(w, r, http.StatusOK, "signed in", envelope{"token": token.SignedString})
}
