// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/models"
)

// insertBatchSize bounds rows per multi-row INSERT so that SQLite stays
// under its bound-parameter limit (10 columns x 50 rows).
const insertBatchSize = 50

// recordRepository is the database/sql implementation of [RecordRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]. Successful writes wake every live view.
type recordRepository struct {
	*DB
	notifier *changeNotifier
	logger   *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:       db,
		notifier: newChangeNotifier(),
		logger:   logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		r        models.Record
		imageURI sql.NullString
	)

	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Aadhaar,
		&r.PAN,
		&r.DOB,
		&r.Mobile,
		&r.BankAccount,
		&r.CIF,
		&r.Address,
		&r.Remark,
		&imageURI,
	)
	if err != nil {
		return models.Record{}, err
	}

	if imageURI.Valid {
		uri := imageURI.String
		r.ImageURI = &uri
	}

	return r, nil
}

// Insert stores r. A duplicate row yields (0, false, nil).
func (r *recordRepository) Insert(ctx context.Context, record models.Record) (int64, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.builder, r.dialect, record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Insert").Msg("failed to build insert query")
		return 0, false, err
	}

	var id int64
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().
			Str("func", "recordRepository.Insert").
			Str("name", record.Name).
			Msg("duplicate record ignored")
		return 0, false, nil
	case err != nil:
		class := r.errorClassificator.Classify(err)
		if class == ConstraintViolation {
			log.Debug().Err(err).
				Str("func", "recordRepository.Insert").
				Msg("constraint violation absorbed on insert")
			return 0, false, nil
		}
		log.Err(err).
			Str("func", "recordRepository.Insert").
			Stringer("class", class).
			Msg("failed to execute insert for record")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	r.notifier.notify()
	return id, true, nil
}

// InsertAll stores records inside one transaction. Rows carrying an id are
// inserted one by one so the id is kept; the rest go in multi-row batches.
func (r *recordRepository) InsertAll(ctx context.Context, records []models.Record) (int, error) {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.InsertAll").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	inserted := 0
	pending := make([]models.Record, 0, insertBatchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		query, args, buildErr := buildInsertRecordsQuery(r.builder, r.dialect, pending)
		if buildErr != nil {
			return buildErr
		}
		n, execErr := execAffected(ctx, tx, query, args)
		if execErr != nil {
			return execErr
		}
		inserted += int(n)
		pending = pending[:0]
		return nil
	}

	for i, record := range records {
		if record.ID != 0 {
			query, args, buildErr := buildInsertRecordQuery(r.builder, r.dialect, record)
			if buildErr != nil {
				return 0, buildErr
			}
			var id int64
			scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&id)
			switch {
			case errors.Is(scanErr, sql.ErrNoRows):
			case scanErr != nil:
				log.Err(scanErr).
					Str("func", "recordRepository.InsertAll").
					Int("index", i).
					Msg("failed to insert record with explicit id")
				return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
			default:
				inserted++
			}
			continue
		}

		pending = append(pending, record)
		if len(pending) == insertBatchSize {
			if err = flush(); err != nil {
				log.Err(err).Str("func", "recordRepository.InsertAll").Int("index", i).Msg("failed to insert batch")
				return 0, err
			}
		}
	}

	if err = flush(); err != nil {
		log.Err(err).Str("func", "recordRepository.InsertAll").Msg("failed to insert last batch")
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "recordRepository.InsertAll").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "recordRepository.InsertAll").
		Int("requested", len(records)).
		Int("inserted", inserted).
		Msg("batch insert finished")

	if inserted > 0 {
		r.notifier.notify()
	}
	return inserted, nil
}

func execAffected(ctx context.Context, tx *sql.Tx, query string, args []any) (int64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

// Update replaces the row with record.ID. Missing rows and unique
// conflicts with another row are absorbed.
func (r *recordRepository) Update(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(r.builder, record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Update").Msg("failed to build update query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		class := r.errorClassificator.Classify(err)
		if class == ConstraintViolation {
			log.Warn().Err(err).
				Str("func", "recordRepository.Update").
				Int64("id", record.ID).
				Msg("update collides with an existing record, ignored")
			return nil
		}
		log.Err(err).
			Str("func", "recordRepository.Update").
			Int64("id", record.ID).
			Stringer("class", class).
			Msg("failed to execute update for record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "recordRepository.Update").
			Int64("id", record.ID).
			Msg("no record with this id, update skipped")
		return nil
	}

	r.notifier.notify()
	return nil
}

// Delete removes the row equal to record in every column.
func (r *recordRepository) Delete(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(r.builder, record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Delete").Msg("failed to build delete query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Delete").
			Int64("id", record.ID).
			Msg("failed to execute delete for record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "recordRepository.Delete").
			Int64("id", record.ID).
			Msg("no exactly matching record, delete skipped")
		return nil
	}

	r.notifier.notify()
	return nil
}

// GetByID returns the record with id or [ErrRecordNotFound].
func (r *recordRepository) GetByID(ctx context.Context, id int64) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordByIDQuery(r.builder, id)
	if err != nil {
		return models.Record{}, err
	}

	record, err := scanRecord(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.GetByID").
			Int64("id", id).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// GetAll returns every record ordered by id.
func (r *recordRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	query, args, err := buildSelectRecordsQuery(r.builder)
	if err != nil {
		return nil, err
	}
	return r.queryRecords(ctx, "recordRepository.GetAll", query, args)
}

// Find returns records whose field matches the LIKE pattern.
func (r *recordRepository) Find(ctx context.Context, field models.SearchField, pattern string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRecordsQuery(r.builder, field, pattern)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Find").
			Str("field", string(field)).
			Msg("failed to build search query")
		return nil, err
	}
	return r.queryRecords(ctx, "recordRepository.Find", query, args)
}

// query runs the lookup selected by q.
func (r *recordRepository) query(ctx context.Context, q models.RecordQuery) ([]models.Record, error) {
	if q.Field == "" {
		return r.GetAll(ctx)
	}
	return r.Find(ctx, q.Field, q.Pattern)
}

func (r *recordRepository) queryRecords(ctx context.Context, fn, query string, args []any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 50)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
