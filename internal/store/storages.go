// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Backend names returned by BackendFor.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMongo    = "mongo"
)

// Storages bundles the opened record store with the resources that must be
// released on shutdown.
type Storages struct {
	RecordStore RecordStore
	Backend     string

	closers []func(context.Context) error
}

// BackendFor picks the backend for dsn and returns the part of the DSN the
// backend's driver expects.
func BackendFor(dsn string) (backend, target string, err error) {
	switch {
	case dsn == "" || dsn == ":memory:":
		return BackendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return BackendMongo, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return BackendSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	}

	switch strings.ToLower(filepath.Ext(dsn)) {
	case ".db", ".sqlite", ".sqlite3":
		return BackendSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// NewStorages opens the record store selected by cfg.DB.DSN and runs the
// migrations of SQL backends.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, target, err := BackendFor(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("unsupported storage")
		return nil, err
	}

	s := &Storages{Backend: backend}

	switch backend {
	case BackendMemory:
		s.RecordStore = NewMemoryRecordStore(log)

	case BackendPostgres, BackendSQLite:
		var db *DB
		if backend == BackendPostgres {
			db, err = NewConnectPostgres(ctx, target, log)
		} else {
			db, err = NewConnectSQLite(ctx, target, log)
		}
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		s.RecordStore = NewVaultRecordRepository(db)
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })

	case BackendMongo:
		mongoStore, err := NewMongoRecordStore(ctx, target, cfg.Mongo.Database, cfg.Mongo.Collection, log)
		if err != nil {
			return nil, err
		}
		s.RecordStore = mongoStore
		s.closers = append(s.closers, mongoStore.Close)
	}

	log.Info().Str("func", "NewStorages").Str("backend", backend).Msg("record store is ready")
	return s, nil
}

// Close releases every opened resource.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		errs = append(errs, closeFn(ctx))
	}
	return errors.Join(errs...)
}
