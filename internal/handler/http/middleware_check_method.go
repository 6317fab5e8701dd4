// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/course-cms/internal/store"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. This
// handler answers 404 with the error envelope instead, so that the routes a
// method is not served on look exactly like unknown paths. A request whose
// method does match is forwarded to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		notFound(w, r)
	}
}

// notFound answers unknown paths with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, store.ErrNotFound)
}
