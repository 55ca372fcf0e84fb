package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Client   ClientConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	Backend string
	File    string
	Watch   bool
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ClientConfig is used by the CLI when it talks to a running server.
type ClientConfig struct {
	ServerURL string
	Timeout   time.Duration
}

func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom reads configuration through v, so callers can bind flags before loading.
func LoadFrom(v *viper.Viper) (*Config, error) {
	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	v.SetDefault("STORAGE_FILE", "data/phonebook.json")
	v.SetDefault("STORAGE_WATCH", false)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "phonebook")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "phonebook")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("CLIENT_SERVER_URL", "")
	v.SetDefault("CLIENT_TIMEOUT", "30s")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: durationOr(v, "SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("STORAGE_BACKEND"),
			File:    v.GetString("STORAGE_FILE"),
			Watch:   v.GetBool("STORAGE_WATCH"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durationOr(v, "DATABASE_CONN_MAX_LIFETIME", time.Hour),
		},
		Client: ClientConfig{
			ServerURL: v.GetString("CLIENT_SERVER_URL"),
			Timeout:   durationOr(v, "CLIENT_TIMEOUT", 30*time.Second),
		},
	}

	switch cfg.Storage.Backend {
	case StorageBackendFile:
		if cfg.Storage.File == "" {
			return nil, fmt.Errorf("STORAGE_FILE is required when STORAGE_BACKEND=file")
		}
	case StorageBackendPostgres:
		if cfg.Database.Host == "" || cfg.Database.Name == "" {
			return nil, fmt.Errorf("DATABASE_HOST and DATABASE_NAME are required when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND value: %s", cfg.Storage.Backend)
	}

	return cfg, nil
}

func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
