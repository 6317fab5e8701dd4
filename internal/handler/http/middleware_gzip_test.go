// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-cms/models"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer gr.Close()
	data, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     []byte
		compressRequest bool
		expectedStatus  int
		expectedBody    string
		expectGzipped   bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true}`,
			expectGzipped:  true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true}`,
		},
		{
			name:           "accept-encoding with several values",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":true}`,
			expectGzipped:  true,
		},
		{
			name:            "decompress request and compress response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"name":"Go"}`),
			compressRequest: true,
			expectedStatus:  http.StatusCreated,
			expectedBody:    `echo {"name":"Go"}`,
			expectGzipped:   true,
		},
		{
			name:            "decompress request only",
			contentEncoding: "gzip",
			requestBody:     []byte(`{"name":"Go"}`),
			compressRequest: true,
			expectedStatus:  http.StatusCreated,
			expectedBody:    `echo {"name":"Go"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.requestBody != nil {
					body, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					assert.Empty(t, r.Header.Get("Content-Encoding"))
					w.WriteHeader(tt.expectedStatus)
					w.Write([]byte("echo " + string(body)))
					return
				}
				w.Write([]byte(tt.expectedBody))
			})

			var body io.Reader
			if tt.compressRequest {
				body = gzipBytes(t, tt.requestBody)
			}
			req := httptest.NewRequest(http.MethodPost, "/admin/categories", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.expectedBody, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/categories", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var response models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.False(t, response.Status)
	assert.Equal(t, ErrInvalidGzipBody.Error(), response.Message)
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/admin/categories/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_CompressionRatioAndPoolReuse(t *testing.T) {
	payload := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	middleware := withGZip(next)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		middleware.ServeHTTP(rr, req)

		assert.Less(t, rr.Body.Len(), len(payload)/10, "request %d", i)
		assert.Equal(t, payload, gunzip(t, rr.Body), "request %d", i)
	}
}
