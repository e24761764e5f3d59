// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-kns/internal/codec"
	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/internal/service"
	"github.com/MKhiriev/go-kns/internal/store"
	"github.com/MKhiriev/go-kns/internal/workers"
	"github.com/MKhiriev/go-kns/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	queue    *workers.Queue

	logger *logger.Logger
}

// NewApp opens storages, builds services and starts the work queue.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	queue := workers.NewQueue(cfg.Workers.QueueSize, log)
	workers.NewWorkers(queue).Run()

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Int("queue_size", cfg.Workers.QueueSize).
		Msg("application started")

	return &App{
		storages: storages,
		services: service.NewClientServices(storages, cfg, buildInfo, log),
		queue:    queue,
		logger:   log,
	}, nil
}

// Close waits for queued jobs and releases the storages.
func (a *App) Close() error {
	a.queue.Stop()
	return a.storages.Close()
}

// run executes fn on the queue and waits for its result. The value travels
// over a channel: when ctx ends first the job may still be running.
func run[T any](ctx context.Context, a *App, fn func(ctx context.Context) (T, error)) (T, error) {
	values := make(chan T, 1)
	err := a.queue.Do(a.logger.WithContext(ctx), func(ctx context.Context) error {
		out, jobErr := fn(ctx)
		values <- out
		return jobErr
	})

	var zero T
	if err != nil {
		return zero, err
	}
	select {
	case out := <-values:
		return out, nil
	default:
		return zero, nil
	}
}

func (a *App) Login(ctx context.Context, username, password string) (models.Session, error) {
	return run(ctx, a, func(ctx context.Context) (models.Session, error) {
		return a.services.AuthService.Login(ctx, username, password)
	})
}

func (a *App) ChangeCredentials(ctx context.Context, session models.Session, username, password, confirm string) error {
	if session.Username == "" {
		return ErrNotLoggedIn
	}

	_, err := run(ctx, a, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.services.AuthService.ChangeCredentials(ctx, username, password, confirm)
	})
	return err
}

func (a *App) CreateRecord(ctx context.Context, r models.Record, photo io.Reader) (models.Record, bool, error) {
	type created struct {
		record   models.Record
		inserted bool
	}

	res, err := run(ctx, a, func(ctx context.Context) (created, error) {
		record, inserted, err := a.services.RecordService.Create(ctx, r, photo)
		return created{record: record, inserted: inserted}, err
	})
	return res.record, res.inserted, err
}

func (a *App) UpdateRecord(ctx context.Context, r models.Record, photo io.Reader) error {
	_, err := run(ctx, a, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.services.RecordService.Update(ctx, r, photo)
	})
	return err
}

func (a *App) DeleteRecord(ctx context.Context, id int64) (models.Record, error) {
	return run(ctx, a, func(ctx context.Context) (models.Record, error) {
		return a.services.RecordService.DeleteByID(ctx, id)
	})
}

func (a *App) GetRecord(ctx context.Context, id int64) (models.Record, error) {
	return run(ctx, a, func(ctx context.Context) (models.Record, error) {
		return a.services.RecordService.Get(ctx, id)
	})
}

func (a *App) ListRecords(ctx context.Context) ([]models.Record, error) {
	return run(ctx, a, a.services.RecordService.List)
}

func (a *App) SearchRecords(ctx context.Context, field models.SearchField, term string) ([]models.Record, error) {
	return run(ctx, a, func(ctx context.Context) ([]models.Record, error) {
		return a.services.RecordService.Search(ctx, field, term)
	})
}

// WatchRecords subscribes on the queue; later snapshots are produced by
// the store as the table changes.
func (a *App) WatchRecords(ctx context.Context, field models.SearchField, term string) (<-chan []models.Record, error) {
	return run(ctx, a, func(jobCtx context.Context) (<-chan []models.Record, error) {
		// the subscription must outlive the job; its refreshes queue like any other read
		watchCtx := store.WithRefreshRunner(a.logger.WithContext(ctx), func(ctx context.Context, refresh func(context.Context) error) error {
			return a.queue.Do(ctx, refresh)
		})
		return a.services.RecordService.Watch(watchCtx, field, term)
	})
}

func (a *App) Export(ctx context.Context) (models.ExportResult, error) {
	return run(ctx, a, a.services.ExportService.Export)
}

func (a *App) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return a.services.AppInfoService.BuildInfo(ctx)
}

// ImportJob is a CSV import running on the work queue.
type ImportJob struct {
	cancel context.CancelFunc
	done   <-chan error
	result models.ImportResult
	err    error
	waited bool
}

// StartImport queues an import of path and returns immediately. progress is
// called from the queue goroutine.
func (a *App) StartImport(ctx context.Context, path string, progress codec.ProgressFunc) *ImportJob {
	jobCtx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	job := &ImportJob{cancel: cancel}

	job.done = a.queue.Submit(jobCtx, func(ctx context.Context) error {
		result, err := a.services.ImportService.ImportFile(ctx, path, progress)
		job.result = result
		return err
	})

	return job
}

// Cancel stops decoding. Nothing is stored when the import is cancelled
// before its rows reach the database.
func (j *ImportJob) Cancel() {
	j.cancel()
}

// Wait blocks until the import finishes. It may be called more than once.
func (j *ImportJob) Wait() (models.ImportResult, error) {
	if !j.waited {
		j.err = <-j.done
		j.waited = true
		j.cancel()
		if errors.Is(j.err, context.Canceled) {
			j.result = models.ImportResult{}
		}
	}
	return j.result, j.err
}
