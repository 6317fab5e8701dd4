// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppInfo describes the running server build.
type AppInfo struct {
	Version   string    `json:"version"`
	StartedAt time.Time `json:"startedAt"`
	// Uptime is rendered with [time.Duration.String], rounded to seconds.
	Uptime string `json:"uptime"`
}
