// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/course-cms/models"
)

// timeoutBody is the envelope sent when a request exceeds the deadline.
var timeoutBody = func() string {
	body, _ := json.Marshal(models.Response{
		Status:  false,
		Message: http.StatusText(http.StatusServiceUnavailable),
		Errors:  []string{"request timed out"},
	})
	return string(body)
}()

// withTimeout cancels the request context after the configured request
// timeout and answers 503. A zero timeout leaves requests unbounded.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	timeout := http.TimeoutHandler(next, h.requestTimeout, timeoutBody)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timeout.ServeHTTP(timeoutResponseWriter{ResponseWriter: w}, r)
	})
}

// timeoutResponseWriter labels the 503 body of http.TimeoutHandler as JSON.
// Headers set by the wrapped handler win.
type timeoutResponseWriter struct {
	http.ResponseWriter
}

func (w timeoutResponseWriter) WriteHeader(statusCode int) {
	if statusCode == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}
