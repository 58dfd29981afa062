// Package store implements the record store collaborator of the vault: an
// owner-scoped CRUD over opaque {title, iv, encryptedData} records.
//
// Backends are selected by DSN: in-memory, PostgreSQL (pgx), SQLite
// (mattn/go-sqlite3) and MongoDB. SQL statements are built with squirrel and
// the schema is managed by the goose migrations in package migrations.
package store
