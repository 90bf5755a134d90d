package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
db:
  dsn: "user:pass@tcp(127.0.0.1:3306)/i18n?parseTime=true"
i18n:
  locale_dir: ./locale
  default: de
  redirect: true
  external_keys: [translator]
log:
  level: debug
  max_size: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "messages", cfg.I18n.Domain)
	assert.Equal(t, "de", cfg.I18n.Default)
	assert.True(t, cfg.I18n.Redirect)
	assert.False(t, cfg.I18n.Negotiate)
	assert.Equal(t, []string{"translator"}, cfg.I18n.External)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Log.MaxSize)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "*/10 * * * *", cfg.Jobs.FlushMissing)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
db:
  dsn: "dsn"
`)
	t.Setenv("I18N_I18N_DEFAULT", "fr")
	t.Setenv("I18N_REDIS_ADDR", "redis:6380")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.I18n.Default)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "missing dsn", content: "server:\n  addr: \":8080\"\n", field: "DSN"},
		{name: "bad redis address", content: "db:\n  dsn: dsn\nredis:\n  addr: nowhere\n", field: "Addr"},
		{name: "unknown log level", content: "db:\n  dsn: dsn\nlog:\n  level: loud\n", field: "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
