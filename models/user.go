// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of a user account.
type Role int

const (
	// RoleOrdinary is assigned to every self-registered account.
	RoleOrdinary Role = 0
	// RoleAdministrator grants access to the /admin API.
	RoleAdministrator Role = 100
)

// Sex is the optional self-reported sex of a user.
type Sex int

const (
	SexMale        Sex = 0
	SexFemale      Sex = 1
	SexUnspecified Sex = 2
)

// User represents an account entity used for authentication and authorization.
//
// PasswordHash holds the bcrypt hash of the password and is never serialized,
// so every outward-facing representation of a User is free of credentials.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Nickname     string    `json:"nickname"`
	Sex          Sex       `json:"sex"`
	Company      string    `json:"company"`
	Introduce    string    `json:"introduce"`
	Avatar       string    `json:"avatar"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAdministrator reports whether the user holds the administrator role.
func (u User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserSummary is the author projection embedded into courses and chapters.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar"`
	Company  string `json:"company,omitempty"`
}

// Credentials is the sign-in request body. Login matches either the email or
// the username of an account.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignUpRequest is the self-registration body. Any other field sent by the
// client is dropped during decoding.
type SignUpRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// UserDraft carries the whitelisted fields an administrator may write.
// Nil fields are left untouched on update.
type UserDraft struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Nickname  *string `json:"nickname"`
	Sex       *Sex    `json:"sex"`
	Company   *string `json:"company"`
	Introduce *string `json:"introduce"`
	Role      *Role   `json:"role"`
	Avatar    *string `json:"avatar"`
}

// Apply copies every non-nil field except Password into u. The password is
// hashed by the caller.
func (d UserDraft) Apply(u *User) {
	if d.Email != nil {
		u.Email = *d.Email
	}
	if d.Username != nil {
		u.Username = *d.Username
	}
	if d.Nickname != nil {
		u.Nickname = *d.Nickname
	}
	if d.Sex != nil {
		u.Sex = *d.Sex
	}
	if d.Company != nil {
		u.Company = *d.Company
	}
	if d.Introduce != nil {
		u.Introduce = *d.Introduce
	}
	if d.Role != nil {
		u.Role = *d.Role
	}
	if d.Avatar != nil {
		u.Avatar = *d.Avatar
	}
}

// ProfileDraft is the set of fields users may change on their own profile.
type ProfileDraft struct {
	Nickname  *string `json:"nickname"`
	Sex       *Sex    `json:"sex"`
	Company   *string `json:"company"`
	Introduce *string `json:"introduce"`
	Avatar    *string `json:"avatar"`
}

// Apply copies every non-nil field into u.
func (d ProfileDraft) Apply(u *User) {
	UserDraft{
		Nickname:  d.Nickname,
		Sex:       d.Sex,
		Company:   d.Company,
		Introduce: d.Introduce,
		Avatar:    d.Avatar,
	}.Apply(u)
}

// AccountDraft changes the credentials of the current user. CurrentPassword
// must match the stored hash.
type AccountDraft struct {
	Email                *string `json:"email"`
	Username             *string `json:"username"`
	CurrentPassword      string  `json:"currentPassword"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"passwordConfirmation"`
}
