// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeNotifier_CollapsesBursts(t *testing.T) {
	n := newChangeNotifier()
	ch := n.subscribe()

	n.notify()
	n.notify()
	n.notify()

	assert.Len(t, ch, 1)
	<-ch
	assert.Len(t, ch, 0)
}

func TestChangeNotifier_Unsubscribe(t *testing.T) {
	n := newChangeNotifier()
	ch := n.subscribe()
	n.unsubscribe(ch)

	n.notify()
	assert.Len(t, ch, 0)
}
