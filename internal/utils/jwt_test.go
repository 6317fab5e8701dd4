// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("course-cms", 123, 30*24*time.Hour, "secret-key", fixedNow)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, fixedNow.Add(30*24*time.Hour), token.ExpiresAt)
	require.NotNil(t, token.Token)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key, fixedNow)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_TableTest(t *testing.T) {
	const (
		issuer = "course-cms"
		key    = "secret-key"
	)
	validity := 30 * 24 * time.Hour

	valid, err := GenerateJWTToken(issuer, 456, validity, key, fixedNow)
	require.NoError(t, err)

	otherIssuer, err := GenerateJWTToken("someone-else", 456, validity, key, fixedNow)
	require.NoError(t, err)

	noneSigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": 456, "iss": issuer, "exp": fixedNow.Add(time.Hour).Unix(),
	})
	noneString, err := noneSigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": issuer, "exp": fixedNow.Add(time.Hour).Unix(),
	})
	noUserString, err := noUser.SignedString([]byte(key))
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		key         string
		now         time.Time
		wantUserID  int64
		wantErr     bool
		wantExpired bool
	}{
		{name: "valid token", token: valid.SignedString, key: key, now: fixedNow.Add(time.Hour), wantUserID: 456},
		{name: "valid one second before expiry", token: valid.SignedString, key: key, now: fixedNow.Add(validity - time.Second), wantUserID: 456},
		{name: "expired after 30 days", token: valid.SignedString, key: key, now: fixedNow.Add(validity + time.Second), wantErr: true, wantExpired: true},
		{name: "wrong key", token: valid.SignedString, key: "another-key", now: fixedNow, wantErr: true},
		{name: "wrong issuer", token: otherIssuer.SignedString, key: key, now: fixedNow, wantErr: true},
		{name: "malformed", token: "not-a-jwt", key: key, now: fixedNow, wantErr: true},
		{name: "alg none", token: noneString, key: key, now: fixedNow, wantErr: true},
		{name: "no user id", token: noUserString, key: key, now: fixedNow, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ValidateAndParseJWTToken(tt.token, tt.key, issuer, tt.now)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantExpired, errorsIsExpired(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, parsed.UserID)
		})
	}
}

func errorsIsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
