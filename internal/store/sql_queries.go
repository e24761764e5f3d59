// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-kns/migrations"
	"github.com/MKhiriev/go-kns/models"
)

const recordsTable = "records"

// recordColumns is the column order used by every SELECT and by scanRecord.
var recordColumns = []string{
	"id",
	"name",
	"aadhaar",
	"pan",
	"dob",
	"mobile",
	"bank_account",
	"cif",
	"address",
	"remark",
	"image_uri",
}

// searchColumns maps searchable fields to their columns.
var searchColumns = map[models.SearchField]string{
	models.SearchByName:        "name",
	models.SearchByAadhaar:     "aadhaar",
	models.SearchByPAN:         "pan",
	models.SearchByBankAccount: "bank_account",
	models.SearchByCIF:         "cif",
}

// recordValues returns the data column values in recordColumns[1:] order.
func recordValues(r models.Record) []any {
	return []any{
		r.Name,
		r.Aadhaar,
		r.PAN,
		r.DOB,
		r.Mobile,
		r.BankAccount,
		r.CIF,
		r.Address,
		r.Remark,
		r.ImageURI,
	}
}

// ignoreDuplicates makes an INSERT skip rows that violate a unique
// constraint instead of failing.
func ignoreDuplicates(ins sq.InsertBuilder, dialect string) sq.InsertBuilder {
	if dialect == migrations.DialectPostgres {
		return ins.Suffix("ON CONFLICT DO NOTHING")
	}
	return ins.Options("OR IGNORE")
}

// buildInsertRecordQuery builds a single-row duplicate-ignoring INSERT that
// returns the assigned id. An ignored row returns no rows.
func buildInsertRecordQuery(b sq.StatementBuilderType, dialect string, r models.Record) (string, []any, error) {
	ins := b.Insert(recordsTable)
	if r.ID != 0 {
		ins = ins.Columns(recordColumns...).Values(append([]any{r.ID}, recordValues(r)...)...)
	} else {
		ins = ins.Columns(recordColumns[1:]...).Values(recordValues(r)...)
	}

	query, args, err := ignoreDuplicates(ins, dialect).Suffix("RETURNING id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertRecordsQuery builds one multi-row duplicate-ignoring INSERT for
// records without ids.
func buildInsertRecordsQuery(b sq.StatementBuilderType, dialect string, records []models.Record) (string, []any, error) {
	ins := b.Insert(recordsTable).Columns(recordColumns[1:]...)
	for _, r := range records {
		ins = ins.Values(recordValues(r)...)
	}

	query, args, err := ignoreDuplicates(ins, dialect).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select(recordColumns...).From(recordsTable).OrderBy("id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectRecordByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.Select(recordColumns...).From(recordsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildFindRecordsQuery builds a single-column LIKE lookup. The pattern is
// passed through untouched; wildcards are the caller's business.
func buildFindRecordsQuery(b sq.StatementBuilderType, field models.SearchField, pattern string) (string, []any, error) {
	column, ok := searchColumns[field]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedSearchField, field)
	}

	query, args, err := b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Like{column: pattern}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateRecordQuery replaces every data column of the row with r.ID.
func buildUpdateRecordQuery(b sq.StatementBuilderType, r models.Record) (string, []any, error) {
	upd := b.Update(recordsTable)
	for i, value := range recordValues(r) {
		upd = upd.Set(recordColumns[i+1], value)
	}

	query, args, err := upd.Where(sq.Eq{"id": r.ID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteRecordQuery matches r in every column. A nil ImageURI becomes
// "image_uri IS NULL"; a zero ID leaves the id unconstrained.
func buildDeleteRecordQuery(b sq.StatementBuilderType, r models.Record) (string, []any, error) {
	match := sq.Eq{}
	for i, value := range recordValues(r) {
		match[recordColumns[i+1]] = value
	}
	if r.ID != 0 {
		match["id"] = r.ID
	}

	query, args, err := b.Delete(recordsTable).Where(match).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
