package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, BackendSQL, cfg.Store.Backend)
	assert.Equal(t, DriverMySQL, cfg.SQL.Driver)
	assert.Equal(t, "campusdistan", cfg.SQL.Table)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, defaultShutdownTimeout, cfg.HTTP.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("STORE_BACKEND", "NEO4J")
	t.Setenv("SQL_DRIVER", "sqlite")
	t.Setenv("SQL_TABLE", "edges")
	t.Setenv("GRAPH_URI", "bolt://localhost:7687")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, BackendNeo4j, cfg.Store.Backend)
	assert.Equal(t, DriverSQLite, cfg.SQL.Driver)
	assert.Equal(t, "edges", cfg.SQL.Table)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "70000")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("SERVER_IDLE_TIMEOUT", "soon")
		_, err := Load()
		require.ErrorContains(t, err, "SERVER_IDLE_TIMEOUT")
	})
}

func TestValidate(t *testing.T) {
	base := Config{
		Store: StoreConfig{Backend: BackendSQL},
		SQL:   SQLConfig{Driver: DriverPostgres, DSN: "postgres://localhost/campus", Table: "campusdistan"},
	}
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"missing dsn":    func(c *Config) { c.SQL.DSN = "" },
		"unknown driver": func(c *Config) { c.SQL.Driver = "oracle" },
		"neo4j no uri":   func(c *Config) { c.Store.Backend = BackendNeo4j },
		"file no path":   func(c *Config) { c.Store.Backend = BackendFile },
		"unknown":        func(c *Config) { c.Store.Backend = "redis" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := base
	cfg.Store.Backend = "redis"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownBackend)
}
