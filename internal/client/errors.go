// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// ErrNotLoggedIn is returned for operations that need a session when the
// given session is empty.
var ErrNotLoggedIn = errors.New("not logged in")
