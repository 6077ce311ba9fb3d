package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "TOKEN_TTL", "MAX_PAGE_SIZE", "MONGO_DB"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DriverMongo, cfg.DBDriver)
	assert.Equal(t, "postboard", cfg.MongoDB)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 100, cfg.MaxPageSize)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "/tmp/pb.db")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("DEFAULT_PAGE_SIZE", "not-a-number")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/pb.db", cfg.DSN())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.DefaultPageSize)
}

func TestLoadConfigEnvFile(t *testing.T) {
	t.Setenv("MONGO_DB", "")
	os.Unsetenv("MONGO_DB")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_DB=fromfile\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("MONGO_DB") })

	cfg := LoadConfig(path)
	assert.Equal(t, "fromfile", cfg.MongoDB)
}

func TestValidate(t *testing.T) {
	cfg := Config{DBDriver: "mysql", DefaultPageSize: 20, MaxPageSize: 100, RequestTimeout: time.Second}
	assert.Error(t, cfg.Validate())

	cfg.DBDriver = DriverPostgres
	assert.NoError(t, cfg.Validate())

	cfg.DefaultPageSize = 200
	assert.Error(t, cfg.Validate())

	cfg.DefaultPageSize = 0
	assert.Error(t, cfg.Validate())
}
