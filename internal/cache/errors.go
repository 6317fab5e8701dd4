// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

var (
	ErrConnectingRedis = errors.New("error connecting to redis")
	ErrReadingCache    = errors.New("error reading cache")
	ErrWritingCache    = errors.New("error writing cache")
	ErrEncodingValue   = errors.New("error encoding cached value")
	ErrDecodingValue   = errors.New("error decoding cached value")
)
