package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps a *sql.DB together with everything that differs between the SQL
// dialects the record repository runs on.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retryIntervals are the pauses between attempts of a retryable call.
var retryIntervals = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, 500 * time.Millisecond}

// Migrate applies the embedded goose migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs op and repeats it while the error is classified as
// [Retryable] and ctx is alive.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, pause := range retryIntervals {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Dur("pause", pause).Msg("retrying database call")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(pause):
		}
		err = op()
	}
	return err
}
