// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/models"
)

// changeNotifier fans a "table changed" signal out to subscribers. Each
// subscriber channel holds at most one pending signal; bursts collapse.
type changeNotifier struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[chan struct{}]struct{})}
}

func (n *changeNotifier) subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

func (n *changeNotifier) unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	delete(n.subs, ch)
	n.mu.Unlock()
}

func (n *changeNotifier) notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// RefreshRunner runs one live-view refresh. The default calls refresh on the
// watcher goroutine.
type RefreshRunner func(ctx context.Context, refresh func(context.Context) error) error

type refreshRunnerKey struct{}

// WithRefreshRunner makes Watch subscriptions opened with ctx run their
// refresh queries through run.
func WithRefreshRunner(ctx context.Context, run RefreshRunner) context.Context {
	return context.WithValue(ctx, refreshRunnerKey{}, run)
}

func refreshRunnerFrom(ctx context.Context) RefreshRunner {
	if run, ok := ctx.Value(refreshRunnerKey{}).(RefreshRunner); ok && run != nil {
		return run
	}
	return func(ctx context.Context, refresh func(context.Context) error) error {
		return refresh(ctx)
	}
}

// Watch implements [RecordRepository]. The first snapshot is computed
// before Watch returns so query errors surface to the caller.
func (r *recordRepository) Watch(ctx context.Context, q models.RecordQuery) (<-chan []models.Record, error) {
	log := logger.FromContext(ctx)
	runRefresh := refreshRunnerFrom(ctx)

	changed := r.notifier.subscribe()

	first, err := r.query(ctx, q)
	if err != nil {
		r.notifier.unsubscribe(changed)
		return nil, err
	}

	out := make(chan []models.Record, 1)
	out <- first

	go func() {
		defer close(out)
		defer r.notifier.unsubscribe(changed)

		for {
			select {
			case <-ctx.Done():
				return
			case <-changed:
			}

			var snapshot []models.Record
			queryErr := runRefresh(ctx, func(ctx context.Context) error {
				var err error
				snapshot, err = r.query(ctx, q)
				return err
			})
			if queryErr != nil {
				if ctx.Err() != nil {
					return
				}
				log.Err(queryErr).
					Str("func", "recordRepository.Watch").
					Str("field", string(q.Field)).
					Msg("failed to refresh live view")
				continue
			}

			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
