package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock wrapped", fmt.Errorf("wrap: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
	}

	classifier := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, classifier.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, classifier.Classify(fmt.Errorf("x: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, classifier.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("boom")))
}
