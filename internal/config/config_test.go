package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		LogLevel:  "info",
		LogFormat: "text",
		StorePath: "pitctl.db",
		Mesh:      MeshConfig{RadialSegments: 1, AngularSegments: 0},
		Batch:     BatchConfig{Workers: runtime.NumCPU()},
		Serve:     ServeConfig{Addr: "127.0.0.1:8080", RateLimit: 5, RateBurst: 10},
	}, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{"log_level", "PITCTL_LOG_LEVEL", "debug", func(c Config) any { return c.LogLevel }, "debug"},
		{"store_path", "PITCTL_STORE_PATH", "/tmp/presets.db", func(c Config) any { return c.StorePath }, "/tmp/presets.db"},
		{"mesh.radial_segments", "PITCTL_MESH_RADIAL_SEGMENTS", "6", func(c Config) any { return c.Mesh.RadialSegments }, 6},
		{"batch.workers", "PITCTL_BATCH_WORKERS", "3", func(c Config) any { return c.Batch.Workers }, 3},
		{"serve.rate_limit", "PITCTL_SERVE_RATE_LIMIT", "0.5", func(c Config) any { return c.Serve.RateLimit }, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.SetEnvPrefix(EnvPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()
			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.field(cfg))
		})
	}
}

func TestInit_ConfigFile(t *testing.T) {
	resetViper(t)
	path := filepath.Join(t.TempDir(), "pitctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_format = "json"

[mesh]
radial_segments = 4
angular_segments = 128

[serve]
addr = ":9000"
`), 0o644))

	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, MeshConfig{RadialSegments: 4, AngularSegments: 128}, cfg.Mesh)
	assert.Equal(t, ":9000", cfg.Serve.Addr)
	assert.Equal(t, 10, cfg.Serve.RateBurst)
}

func TestInit_MissingExplicitFile(t *testing.T) {
	resetViper(t)
	err := Init(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
		want  string
	}{
		{"log_level", "loud", `log_level "loud"`},
		{"log_format", "xml", `log_format "xml"`},
		{"store_path", "", "store_path is empty"},
		{"mesh.radial_segments", 0, "mesh.radial_segments 0 < 1"},
		{"mesh.angular_segments", -1, "mesh.angular_segments -1 < 0"},
		{"batch.workers", 0, "batch.workers 0 < 1"},
		{"serve.rate_limit", 0.0, "serve.rate_limit 0 must be positive"},
		{"serve.rate_burst", 0, "serve.rate_burst 0 < 1"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)

			_, err := Load()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "file", "pit.toml")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"file":"pit.toml"`)

	buf.Reset()
	log, err = NewLogger(Config{LogLevel: "DEBUG", LogFormat: "text"}, &buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "level=DEBUG msg=hello")

	_, err = NewLogger(Config{LogLevel: "info", LogFormat: "xml"}, &buf)
	require.ErrorIs(t, err, ErrInvalid)
}
