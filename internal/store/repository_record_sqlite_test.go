// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/models"
)

func newSQLiteRecordRepo(t *testing.T) RecordRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		Driver: config.DriverSQLite,
		DSN:    ":memory:",
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return NewRecordRepository(db, logger.Nop())
}

func seed(t *testing.T, repo RecordRepository, names ...string) []models.Record {
	t.Helper()

	out := make([]models.Record, 0, len(names))
	for _, name := range names {
		r := sampleRecord()
		r.Name = name
		id, inserted, err := repo.Insert(context.Background(), r)
		require.NoError(t, err)
		require.True(t, inserted)
		r.ID = id
		out = append(out, r)
	}
	return out
}

func TestSQLite_FindEmptyPatternReturnsAll(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi", "Asha", "Meena")

	for _, field := range models.SearchFields {
		got, err := repo.Find(context.Background(), field, "%%")
		require.NoError(t, err)
		assert.Len(t, got, 3, field)
	}
}

func TestSQLite_FindByNameSubstring(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi Kumar", "Asha Rao")

	got, err := repo.Find(context.Background(), models.SearchByName, "%Kum%")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi Kumar", got[0].Name)

	got, err = repo.Find(context.Background(), models.SearchByName, "%zzz%")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_InsertAssignsIncreasingIDs(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A", "B", "C")

	assert.Less(t, records[0].ID, records[1].ID)
	assert.Less(t, records[1].ID, records[2].ID)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, all)
}

func TestSQLite_DuplicateIgnored(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi")

	r := sampleRecord()
	r.Name = "Ravi"
	id, inserted, err := repo.Insert(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Zero(t, id)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLite_InsertAllSkipsDuplicates(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi")

	batch := make([]models.Record, 0, 120)
	for i := 0; i < 120; i++ {
		r := sampleRecord()
		r.Remark = time.Duration(i).String()
		batch = append(batch, r)
	}
	dup := sampleRecord()
	dup.Name = "Ravi"
	batch = append(batch, dup)

	n, err := repo.InsertAll(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 120, n)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 121)
}

func TestSQLite_UpdateChangesOnlyTarget(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A", "B", "C")

	changed := records[1]
	changed.Mobile = "9000000000"
	uri := "/photos/IMG_b.jpg"
	changed.ImageURI = &uri
	require.NoError(t, repo.Update(context.Background(), changed))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, records[0], all[0])
	assert.Equal(t, changed, all[1])
	assert.Equal(t, records[2], all[2])
}

func TestSQLite_UpdateMissingIDIsNoop(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A")

	ghost := sampleRecord()
	ghost.ID = records[0].ID + 100
	require.NoError(t, repo.Update(context.Background(), ghost))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, all)
}

func TestSQLite_UpdateIntoDuplicateIsAbsorbed(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A", "B")

	clash := records[1]
	clash.Name = "A"
	require.NoError(t, repo.Update(context.Background(), clash))

	got, err := repo.GetByID(context.Background(), records[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
}

func TestSQLite_DeleteThenQuery(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A", "B")

	require.NoError(t, repo.Delete(context.Background(), records[0]))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records[1:], all)

	_, err = repo.GetByID(context.Background(), records[0].ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSQLite_DeleteRequiresFullMatch(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	records := seed(t, repo, "A")

	stale := records[0]
	stale.Remark = "edited elsewhere"
	require.NoError(t, repo.Delete(context.Background(), stale))

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLite_WatchEmitsOnChange(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := repo.Watch(ctx, models.RecordQuery{Field: models.SearchByName, Pattern: "%a%"})
	require.NoError(t, err)

	first := <-ch
	assert.Len(t, first, 1)

	seed(t, repo, "Asha")

	select {
	case next := <-ch:
		assert.Len(t, next, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("live view did not refresh after insert")
	}

	cancel()
	for range ch {
	}
}

func TestSQLite_WatchAllWithoutField(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "A", "B")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := repo.Watch(ctx, models.RecordQuery{})
	require.NoError(t, err)
	assert.Len(t, <-ch, 2)
}

func TestSQLite_WatchRefreshUsesRunner(t *testing.T) {
	repo := newSQLiteRecordRepo(t)
	seed(t, repo, "Ravi")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	ctx = WithRefreshRunner(ctx, func(ctx context.Context, refresh func(context.Context) error) error {
		runs.Add(1)
		return refresh(ctx)
	})

	ch, err := repo.Watch(ctx, models.RecordQuery{})
	require.NoError(t, err)
	assert.Len(t, <-ch, 1)
	assert.Zero(t, runs.Load(), "first snapshot runs on the caller")

	seed(t, repo, "Asha")

	select {
	case next := <-ch:
		assert.Len(t, next, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("live view did not refresh after insert")
	}
	assert.Equal(t, int32(1), runs.Load())
}

func TestSQLite_WatchRefreshErrorKeepsSubscription(t *testing.T) {
	repo := newSQLiteRecordRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fail atomic.Bool
	fail.Store(true)
	ctx = WithRefreshRunner(ctx, func(ctx context.Context, refresh func(context.Context) error) error {
		if fail.Swap(false) {
			return errors.New("queue closed")
		}
		return refresh(ctx)
	})

	ch, err := repo.Watch(ctx, models.RecordQuery{})
	require.NoError(t, err)
	assert.Empty(t, <-ch)

	seed(t, repo, "Ravi")
	time.Sleep(50 * time.Millisecond)
	seed(t, repo, "Asha")

	select {
	case next := <-ch:
		assert.Len(t, next, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("live view stopped after a failed refresh")
	}
}
