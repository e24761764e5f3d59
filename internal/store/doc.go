// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer of the client: the records
// table (SQLite or PostgreSQL), the live record views built on top of it,
// the photo directory and the credentials file.
//
// SQL is assembled with squirrel so that one set of builders serves both
// dialects; the dialect decides the placeholder format and the
// duplicate-ignoring insert form.
package store
