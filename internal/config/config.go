package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Store   StoreConfig
	SQL     SQLConfig
	Graph   GraphConfig
	Logging LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host              string
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	AllowedOriginsCSV string
}

// StoreConfig selects where edges are read from.
type StoreConfig struct {
	Backend   string // sql|neo4j|file
	EdgesFile string
}

// SQLConfig describes the relational table holding the edges.
type SQLConfig struct {
	Driver       string // mysql|postgres|sqlite
	DSN          string
	Table        string
	MaxOpenConns int
}

// GraphConfig describes connectivity to the Neo4j graph database.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// Store backends.
const (
	BackendSQL   = "sql"
	BackendNeo4j = "neo4j"
	BackendFile  = "file"
)

// SQL drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultHost             = "0.0.0.0"
	defaultPort             = 8080
	defaultReadTimeout      = 10 * time.Second
	defaultWriteTimeout     = 15 * time.Second
	defaultIdleTimeout      = 60 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "text"
	defaultBackend          = BackendSQL
	defaultSQLDriver        = DriverMySQL
	defaultSQLTable         = "campusdistan"
	defaultSQLMaxOpenConns  = 4
	defaultGraphMaxSessions = 10
)

var (
	// ErrUnknownBackend indicates STORE_BACKEND holds an unsupported value.
	ErrUnknownBackend = errors.New("unknown store backend")

	// ErrUnknownDriver indicates SQL_DRIVER holds an unsupported value.
	ErrUnknownDriver = errors.New("unknown sql driver")
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host:            valueOrDefault("SERVER_HOST", defaultHost),
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Store: StoreConfig{
			Backend:   strings.ToLower(valueOrDefault("STORE_BACKEND", defaultBackend)),
			EdgesFile: os.Getenv("EDGES_FILE"),
		},
		SQL: SQLConfig{
			Driver:       strings.ToLower(valueOrDefault("SQL_DRIVER", defaultSQLDriver)),
			DSN:          os.Getenv("SQL_DSN"),
			Table:        valueOrDefault("SQL_TABLE", defaultSQLTable),
			MaxOpenConns: parseIntWithDefault("SQL_MAX_OPEN_CONNS", defaultSQLMaxOpenConns),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
		Graph: GraphConfig{
			URI:            os.Getenv("GRAPH_URI"),
			Database:       valueOrDefault("GRAPH_DATABASE", ""),
			Username:       os.Getenv("GRAPH_USERNAME"),
			Password:       os.Getenv("GRAPH_PASSWORD"),
			MaxConnections: parseIntWithDefault("GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions),
		},
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	durations := []struct {
		key    string
		target *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		if err := parseDuration(d.key, d.target); err != nil {
			return Config{}, err
		}
	}

	cfg.HTTP.AllowedOriginsCSV = os.Getenv("SERVER_ALLOWED_ORIGINS")

	return cfg, nil
}

// Validate checks that the selected store backend is fully configured.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQL:
		switch c.SQL.Driver {
		case DriverMySQL, DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownDriver, c.SQL.Driver)
		}
		if c.SQL.DSN == "" {
			return errors.New("SQL_DSN is required for the sql backend")
		}
		if c.SQL.Table == "" {
			return errors.New("SQL_TABLE must not be empty")
		}
	case BackendNeo4j:
		if c.Graph.URI == "" {
			return errors.New("GRAPH_URI is required for the neo4j backend")
		}
	case BackendFile:
		if c.Store.EdgesFile == "" {
			return errors.New("EDGES_FILE is required for the file backend")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Store.Backend)
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parseDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
