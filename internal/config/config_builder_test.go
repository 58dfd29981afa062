package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "9.9.9"})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "9.9.9", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "2.0.0"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "2.0.0", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	require.Error(t, b.err)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvFlagsAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"rate_burst": 99},
	})
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"SERVER_ADDRESS":     "localhost:7000",
	})

	cfg, err := GetStructuredConfig([]string{"-a", "localhost:7001", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, 99, cfg.Server.RateBurst)
	assert.Equal(t, 720*time.Hour, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_Validation(t *testing.T) {
	setEnvVars(t, nil)

	_, err := GetStructuredConfig(nil)

	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr error
		remote  bool
	}{
		{
			name:   "remote store",
			env:    map[string]string{"CLIENT_IDENTITY": "a@b.com"},
			args:   []string{"-server-url", "http://localhost:8080", "-token", "tok"},
			remote: true,
		},
		{
			name: "local sqlite store",
			env:  map[string]string{"CLIENT_IDENTITY": "a@b.com"},
			args: []string{"-d", "vault.db"},
		},
		{
			name:    "missing identity",
			args:    []string{"-d", "vault.db"},
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "remote without token",
			args:    []string{"-identity", "a@b.com", "-server-url", "http://localhost:8080"},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "remote without scheme",
			args:    []string{"-identity", "a@b.com", "-server-url", "localhost:8080", "-token", "tok"},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "in-memory local store",
			args:    []string{"-identity", "a@b.com", "-d", ":memory:"},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no store at all",
			args:    []string{"-identity", "a@b.com"},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			cfg, err := GetClientConfig(tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", cfg.Session.Identity)
			assert.Equal(t, tt.remote, cfg.UsesRemoteStore())
			assert.Equal(t, 5*time.Minute, cfg.Session.AutoLock)
		})
	}
}
