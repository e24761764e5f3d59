// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the application runtime.
//
// It wires configuration, storages, services and the serial work queue into
// a single lifecycle. Every storage-touching operation runs as a job on the
// queue so that callers never touch the database concurrently.
package client
