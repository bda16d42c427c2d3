package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDBPath(), cfg.DBPath)
	assert.True(t, strings.HasSuffix(cfg.DBPath, filepath.Join(".lessonslot", "lessonslot.db")))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "lessonslot.yaml", `db_path: /tmp/school.db
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/school.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_JSONFileFromEnv(t *testing.T) {
	path := writeFile(t, "lessonslot.json", `{"db_path": "/tmp/env.db"}`)
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "lessonslot.yml", "db_path: /tmp/file.db\nlog:\n  level: info\n")
	t.Setenv("LESSONSLOT_DB_PATH", "/tmp/override.db")
	t.Setenv("LESSONSLOT_LOG__LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"unsupported extension", func(t *testing.T) string { return writeFile(t, "cfg.toml", "") }, "unsupported config format"},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }, "loading config"},
		{"bad level", func(t *testing.T) string { return writeFile(t, "cfg.yaml", "log:\n  level: loud\n") }, "unknown log level"},
		{"bad format", func(t *testing.T) string { return writeFile(t, "cfg.yaml", "log:\n  format: xml\n") }, "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoggingConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)
}

func TestLoggingConfig_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	LoggingConfig{Level: "info", Format: "text"}.NewLogger(&buf).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
