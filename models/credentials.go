// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the single username/password pair that gates the
// application. It is stored as-is and overwritten wholesale on change.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session describes a successful login. It is handed explicitly to the
// code that needs it instead of living in package-level state.
type Session struct {
	Username   string    `json:"username" yaml:"username"`
	LoggedInAt time.Time `json:"logged_in_at" yaml:"logged_in_at"`

	// DefaultCredentials is true when no stored pair exists and the
	// built-in default pair was accepted.
	DefaultCredentials bool `json:"default_credentials" yaml:"default_credentials"`
}
