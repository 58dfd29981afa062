package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestBackendFor(t *testing.T) {
	tests := []struct {
		dsn         string
		wantBackend string
		wantTarget  string
		wantErr     bool
	}{
		{"", BackendMemory, "", false},
		{":memory:", BackendMemory, "", false},
		{"postgres://u:p@localhost:5432/vault", BackendPostgres, "postgres://u:p@localhost:5432/vault", false},
		{"postgresql://localhost/vault", BackendPostgres, "postgresql://localhost/vault", false},
		{"mongodb://localhost:27017", BackendMongo, "mongodb://localhost:27017", false},
		{"mongodb+srv://cluster.example.net", BackendMongo, "mongodb+srv://cluster.example.net", false},
		{"sqlite:///tmp/vault", BackendSQLite, "/tmp/vault", false},
		{"vault.db", BackendSQLite, "vault.db", false},
		{"/home/me/vault.SQLITE3", BackendSQLite, "/home/me/vault.SQLITE3", false},
		{"mysql://localhost/vault", "", "", true},
		{"vault.txt", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			backend, target, err := BackendFor(tt.dsn)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBackend, backend)
			assert.Equal(t, tt.wantTarget, target)
		})
	}
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, BackendMemory, s.Backend)
	assert.NotNil(t, s.RecordStore)
	assert.NoError(t, s.Close(context.Background()))
}

func TestNewStorages_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(ctx) })
	assert.Equal(t, BackendSQLite, s.Backend)

	created, err := s.RecordStore.Create(ctx, owner, validInput)
	require.NoError(t, err)

	updated, err := s.RecordStore.Update(ctx, created.ID, owner, validInput)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	records, err := s.RecordStore.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mail", records[0].Title)
	assert.True(t, created.CreatedAt.Equal(records[0].CreatedAt))

	require.ErrorIs(t, s.RecordStore.Delete(ctx, created.ID, "other@b.com"), ErrRecordNotFound)
	require.NoError(t, s.RecordStore.Delete(ctx, created.ID, owner))
}

func TestNewStorages_Unsupported(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "redis://localhost"}}, logger.Nop())

	require.ErrorIs(t, err, ErrUnsupportedDSN)
}
