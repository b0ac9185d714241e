// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	DebugLogging    bool   `mapstructure:"debug_logging"`
	LogFile         string `mapstructure:"log_file"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	RequestTimeout  int    `mapstructure:"request_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// Defaults reproduce the service's fixed contract: plain HTTP on all
// interfaces, port 3000. Timeouts are in seconds.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 3000
	DefaultReadTimeout     = 10
	DefaultWriteTimeout    = 10
	DefaultRequestTimeout  = 30
	DefaultShutdownTimeout = 15
)

// Load reads configuration from an optional file plus SOLANA_API_* env
// variables. An empty path runs the service entirely on defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"host":             DefaultHost,
		"port":             DefaultPort,
		"debug_logging":    false,
		"log_file":         "",
		"read_timeout":     DefaultReadTimeout,
		"write_timeout":    DefaultWriteTimeout,
		"request_timeout":  DefaultRequestTimeout,
		"shutdown_timeout": DefaultShutdownTimeout,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("SOLANA_API")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.Host == "" {
		return errors.New("missing host in configuration")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return errors.New("invalid read/write timeout")
	}
	if cfg.RequestTimeout <= 0 {
		return errors.New("invalid request_timeout")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("invalid shutdown_timeout")
	}
	return nil
}

// ListenAddr returns the host:port pair the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
