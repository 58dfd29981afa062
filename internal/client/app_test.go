package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

var buildInfo = models.NewAppBuildInfo("v1", "", "")

func TestNewApp_LocalSQLite(t *testing.T) {
	cfg := &config.ClientConfig{
		Storage: config.ClientStorage{DSN: filepath.Join(t.TempDir(), "vault.db")},
		Session: config.ClientSession{Identity: "a@b.com", AutoLock: time.Minute},
	}

	app, err := NewApp(context.Background(), cfg, buildInfo, logger.Nop())
	require.NoError(t, err)
	defer app.close()

	require.NotNil(t, app.storages)
	assert.Equal(t, store.BackendSQLite, app.storages.Backend)
	assert.Equal(t, "a@b.com", app.session.Identity())
	assert.Equal(t, vault.StateLocked, app.session.State())

	// сессия работает поверх открытого хранилища
	require.NoError(t, app.session.Unlock(context.Background(), "correct"))
	_, err = app.session.Create(context.Background(), "Mail", models.DecryptedPayload{Password: "p"})
	require.NoError(t, err)
}

func TestNewApp_Remote(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost:8080", Token: "t", RequestTimeout: time.Second},
		Session: config.ClientSession{Identity: "a@b.com"},
	}

	app, err := NewApp(context.Background(), cfg, buildInfo, logger.Nop())
	require.NoError(t, err)

	assert.Nil(t, app.storages)
	assert.NotPanics(t, app.close)
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ClientConfig
		wantErr error
	}{
		{
			name:    "unsupported dsn",
			cfg:     &config.ClientConfig{Storage: config.ClientStorage{DSN: "redis://localhost"}},
			wantErr: store.ErrUnsupportedDSN,
		},
		{
			name:    "bad remote address",
			cfg:     &config.ClientConfig{Adapter: config.ClientAdapter{HTTPAddress: "http://"}},
			wantErr: adapter.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(context.Background(), tt.cfg, buildInfo, logger.Nop())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, app)
		})
	}
}
