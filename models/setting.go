// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Setting holds site-wide settings. Exactly one row exists.
type Setting struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ICP       string    `json:"icp"`
	Copyright string    `json:"copyright"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingDraft carries the whitelisted writable fields of the Setting row.
type SettingDraft struct {
	Name      *string `json:"name"`
	ICP       *string `json:"icp"`
	Copyright *string `json:"copyright"`
}

// Apply copies every non-nil field into s.
func (d SettingDraft) Apply(s *Setting) {
	if d.Name != nil {
		s.Name = *d.Name
	}
	if d.ICP != nil {
		s.ICP = *d.ICP
	}
	if d.Copyright != nil {
		s.Copyright = *d.Copyright
	}
}
