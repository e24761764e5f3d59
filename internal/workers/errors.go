// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrQueueClosed is returned for jobs submitted after Stop.
	ErrQueueClosed = errors.New("work queue is closed")

	// ErrJobPanicked is returned when a job panics; the queue keeps running.
	ErrJobPanicked = errors.New("job panicked")
)
