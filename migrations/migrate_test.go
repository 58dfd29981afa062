// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting dialect")
}

func TestEmbeddedMigrations(t *testing.T) {
	body, err := embedMigrations.ReadFile("00001_create_vault_records.sql")
	require.NoError(t, err)

	sqlText := string(body)
	assert.True(t, strings.Contains(sqlText, "-- +goose Up"))
	assert.True(t, strings.Contains(sqlText, "-- +goose Down"))
	for _, column := range []string{"owner_id", "title", "iv", "encrypted_data"} {
		assert.Contains(t, sqlText, column)
	}
}
