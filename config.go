package minid

import (
	"time"
)

// Config holds the settings used by the factory package and the binaries.
type Config struct {
	Generator GeneratorConfig `json:"generator"`
	Logging   LoggingConfig   `json:"logging"`
	Server    ServerConfig    `json:"server"`
}

// GeneratorConfig contains ID generation settings
type GeneratorConfig struct {
	// Prefix is attached to generated IDs. Empty means unprefixed.
	Prefix string `json:"prefix" env:"MINID_PREFIX"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level       string `json:"level" env:"MINID_LOG_LEVEL"`
	Format      string `json:"format" env:"MINID_LOG_FORMAT"` // json or console
	Development bool   `json:"development" env:"MINID_LOG_DEVELOPMENT"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Addr            string        `json:"addr" env:"MINID_ADDR"`
	ReadTimeout     time.Duration `json:"readTimeout" env:"MINID_READ_TIMEOUT"`
	WriteTimeout    time.Duration `json:"writeTimeout" env:"MINID_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout" env:"MINID_SHUTDOWN_TIMEOUT"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Prefix: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Generator.Prefix != "" {
		if err := ValidatePrefix(c.Generator.Prefix); err != nil {
			return &ConfigError{Field: "generator.prefix", Message: "must be printable ASCII without '_'"}
		}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "must be one of debug, info, warn, error"}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be json or console"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "must not be empty"}
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return &ConfigError{Field: "server", Message: "timeouts must not be negative"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return "config validation error for field '" + e.Field + "': " + e.Message
}
