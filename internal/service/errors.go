// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrAuthenticationRequired is returned by the access gate when the
	// request carries no token.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrIdentityNoLongerExists is returned when a valid token names a user
	// that has been removed.
	ErrIdentityNoLongerExists = errors.New("identity no longer exists")
	// ErrForbidden is returned when the identity lacks the required role.
	ErrForbidden = errors.New("forbidden")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
