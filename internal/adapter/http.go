// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/course-cms/internal/config"
	"github.com/MKhiriev/course-cms/internal/logger"
	"github.com/MKhiriev/course-cms/internal/utils"
	"github.com/MKhiriev/course-cms/models"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs the HTTP implementation of [AdminAdapter]
// for the server at cfg.HTTPAddress. A token from the configuration is used
// until SignIn replaces it.
func NewHTTPAdminAdapter(cfg config.Adapter, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	a := &httpAdminAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignIn posts the credentials to POST /admin/auth/sign_in.
func (h *httpAdminAdapter) SignIn(ctx context.Context, credentials models.Credentials) (string, error) {
	var payload struct {
		Token string `json:"token"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/admin/auth/sign_in")
	if err != nil {
		return "", fmt.Errorf("sign in request: %w", err)
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return "", err
	}
	if payload.Token == "" {
		return "", fmt.Errorf("%w: no token in sign in response", ErrUnexpectedResponse)
	}

	h.SetToken(payload.Token)
	h.logger.Debug().Msg("signed in")
	return payload.Token, nil
}

// Categories fetches GET /categories.
func (h *httpAdminAdapter) Categories(ctx context.Context) ([]models.Category, error) {
	var payload struct {
		Categories []models.Category `json:"categories"`
	}

	resp, err := h.authedRequest(ctx).Get("/categories")
	if err != nil {
		return nil, fmt.Errorf("categories request: %w", err)
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

func (h *httpAdminAdapter) DeleteCategory(ctx context.Context, id int64) error {
	return h.delete(ctx, "/admin/categories/", id)
}

func (h *httpAdminAdapter) DeleteCourse(ctx context.Context, id int64) error {
	return h.delete(ctx, "/admin/courses/", id)
}

// Version fetches GET /version.
func (h *httpAdminAdapter) Version(ctx context.Context) (string, error) {
	var payload struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = decodeEnvelope(resp, &payload); err != nil {
		return "", err
	}
	return payload.Version, nil
}

func (h *httpAdminAdapter) delete(ctx context.Context, prefix string, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(prefix + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return decodeEnvelope(resp, nil)
}

func (h *httpAdminAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeEnvelope maps a failed response to an error and otherwise decodes
// the data field of the envelope into dst. A nil dst skips decoding.
func decodeEnvelope(resp *resty.Response, dst any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var envelope struct {
		Status bool            `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if !envelope.Status {
		return fmt.Errorf("%w: status is false", ErrUnexpectedResponse)
	}
	if dst == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}
