// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the course-cms transport servers: startup, signal
// handling and graceful shutdown within the configured timeout.
package server
