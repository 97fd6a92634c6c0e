package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	EtcRPCHost     string        `envconfig:"ETC_RPC_HOST" default:"ec2-52-30-28-57.eu-west-1.compute.amazonaws.com"`
	EtcRPCPort     int           `envconfig:"ETC_RPC_PORT" default:"8546"`
	RPCTimeout     time.Duration `envconfig:"RPC_TIMEOUT" default:"15s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool          `envconfig:"LOG_DEVELOPMENT" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.EtcRPCPort <= 0 || c.EtcRPCPort > 65535 {
		return fmt.Errorf("invalid ETC_RPC_PORT: %d", c.EtcRPCPort)
	}
	if c.RPCTimeout <= 0 {
		return fmt.Errorf("RPC_TIMEOUT must be positive, got %s", c.RPCTimeout)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetEtcRPCHost returns the Mantis node host
func GetEtcRPCHost() string {
	return Get().EtcRPCHost
}

// GetEtcRPCPort returns the Mantis node JSON-RPC port
func GetEtcRPCPort() int {
	return Get().EtcRPCPort
}

// GetRPCTimeout returns the per-request budget for node calls
func GetRPCTimeout() time.Duration {
	return Get().RPCTimeout
}

// GetLogLevel returns the zap level name (debug, info, warn, error)
func GetLogLevel() string {
	return Get().LogLevel
}

// GetLogDevelopment reports whether the console encoder should be used
func GetLogDevelopment() bool {
	return Get().LogDevelopment
}
