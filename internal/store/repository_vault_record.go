// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultRecordRepository is the SQL implementation of [RecordStore]. The same
// code runs on PostgreSQL and SQLite; the embedded [*DB] supplies the
// placeholder format and the error classifier.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with the
// request's fields. Owner identities are not logged, only record ids.
type vaultRecordRepository struct {
	*DB
	ids utils.IDGenerator
	now func() time.Time
}

// NewVaultRecordRepository constructs a SQL-backed [RecordStore].
func NewVaultRecordRepository(db *DB) RecordStore {
	return &vaultRecordRepository{
		DB:  db,
		ids: utils.NewUUIDGenerator(),
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.VaultRecord, error) {
	var r models.VaultRecord
	err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &r.IV, &r.EncryptedData, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// List returns all records of ownerID ordered by creation time. Returns an
// empty slice when the owner has no records.
func (p *vaultRecordRepository) List(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(p.placeholder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var records []models.VaultRecord
	err = p.withRetry(ctx, func() error {
		records, err = p.queryRecords(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.List").Msg("failed to list vault records")
		return nil, err
	}

	return records, nil
}

func (p *vaultRecordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.VaultRecord, error) {
	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.VaultRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Create inserts a new record with a UUIDv7 id.
func (p *vaultRecordRepository) Create(ctx context.Context, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	now := p.now()
	record := models.VaultRecord{
		ID:            p.ids.Generate(),
		OwnerID:       ownerID,
		Title:         in.Title,
		IV:            in.IV,
		EncryptedData: in.EncryptedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query, args, err := buildInsertRecordQuery(p.placeholder, record)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Create").Msg("failed to create query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = p.withRetry(ctx, func() error {
		res, execErr := p.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultRecordRepository.Create").
			Str("record_id", record.ID).
			Msg("failed to insert vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.VaultRecord{}, ErrRecordNotSaved
	}

	log.Debug().Str("func", "vaultRecordRepository.Create").Str("record_id", record.ID).Msg("vault record inserted")
	return record, nil
}

// Update replaces title and envelope in a transaction and returns the stored
// row. Zero affected rows means the record is missing or owned by another
// identity.
func (p *vaultRecordRepository) Update(ctx context.Context, id, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	if err := checkScope(id, ownerID); err != nil {
		return models.VaultRecord{}, err
	}
	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	updateQuery, updateArgs, err := buildUpdateRecordQuery(p.placeholder, id, ownerID, in, p.now())
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Update").Msg("failed to create update query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	selectQuery, selectArgs, err := buildGetRecordQuery(p.placeholder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Update").Msg("failed to create select query")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Update").Msg("failed to begin transaction")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Update").Str("record_id", id).Msg("failed to update vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.VaultRecord{}, ErrRecordNotFound
	}

	record, err := scanRecord(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultRecord{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "vaultRecordRepository.Update").Str("record_id", id).Msg("failed to read updated record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Update").Msg("failed to commit transaction")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return record, nil
}

// Delete removes one owned record.
func (p *vaultRecordRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	if err := checkScope(id, ownerID); err != nil {
		return err
	}

	query, args, err := buildDeleteRecordQuery(p.placeholder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = p.withRetry(ctx, func() error {
		res, execErr := p.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "vaultRecordRepository.Delete").Str("record_id", id).Msg("failed to delete vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
