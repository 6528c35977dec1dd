package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// InsecureDefaultJWTSecret is the placeholder secret shipped in sample configs.
// A server configured with it refuses to start.
const InsecureDefaultJWTSecret = "your-secret-key-change-in-production"

// DefaultConfigPath is used when neither a flag nor RECRUIT_CONFIG is set.
const DefaultConfigPath = "config.yaml"

// Environment variable overrides.
const (
	EnvConfigPath  = "RECRUIT_CONFIG"
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvJWTSecret   = "JWT_SECRET"
	EnvServerAddr  = "SERVER_ADDR"
	EnvLogLevel    = "LOG_LEVEL"
)

// Configuration errors.
var (
	ErrMissingDSN        = errors.New("config: database.dsn is required")
	ErrMissingJWTSecret  = errors.New("config: jwt.secret is required")
	ErrInsecureJWTSecret = errors.New("config: jwt.secret is the insecure default; set a strong random secret")
)

// AppConfig holds process-level inputs resolved from flags.
type AppConfig struct {
	ConfigPath string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Mode            string        `yaml:"mode"`
	ReadTimeout     time.Duration `yaml:"read-timeout"`
	WriteTimeout    time.Duration `yaml:"write-timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout"`
}

// DatabaseConfig configures the store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig configures logging and optional file rotation.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max-size-mb"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAgeDays int    `yaml:"max-age-days"`
}

// BootstrapConfig is the admin seeded by the bootstrap command.
type BootstrapConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Log       LogConfig       `yaml:"log"`
	Bootstrap BootstrapConfig `yaml:"bootstrap"`
}

// Default returns a Config with every optional value filled in.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{DSN: "data/recruit.db"},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Bootstrap: BootstrapConfig{Username: "admin"},
	}
}

// ResolveConfigPath returns the explicit path, then RECRUIT_CONFIG, then the default.
func ResolveConfigPath(path string) string {
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		return trimmed
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigPath)); env != "" {
		return env
	}
	return DefaultConfigPath
}

// Load reads the YAML file at path over the defaults and applies env overrides.
// A missing file is not an error; env vars alone can configure the service.
// A .env file in the working directory is loaded first when present.
func Load(path string) (Config, error) {
	if errEnv := godotenv.Load(); errEnv != nil && !errors.Is(errEnv, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", errEnv)
	}

	cfg := Default()
	data, errRead := os.ReadFile(path)
	switch {
	case errRead == nil:
		if errParse := yaml.Unmarshal(data, &cfg); errParse != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, errParse)
		}
	case errors.Is(errRead, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, errRead)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := lookupEnv(EnvDatabaseDSN); ok {
		cfg.Database.DSN = v
	}
	if v, ok := lookupEnv(EnvJWTSecret); ok {
		cfg.JWT.Secret = v
	}
	if v, ok := lookupEnv(EnvServerAddr); ok {
		cfg.Server.Addr = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// Validate checks settings the server cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return ErrMissingDSN
	}
	return c.JWT.Validate()
}

// Validate rejects empty and known-insecure signing secrets.
func (c JWTConfig) Validate() error {
	secret := strings.TrimSpace(c.Secret)
	if secret == "" {
		return ErrMissingJWTSecret
	}
	if secret == InsecureDefaultJWTSecret {
		return ErrInsecureJWTSecret
	}
	return nil
}
