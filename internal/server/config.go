package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/prepay-planner/internal/config"
	"github.com/iwvelando/prepay-planner/pkg/constants"
	"github.com/iwvelando/prepay-planner/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address            string               `yaml:"address"`
	RateLimitPerMinute int                  `yaml:"rateLimitPerMinute"`
	Storage            StorageConfig        `yaml:"storage"`
	Logging            config.LoggingConfig `yaml:"logging"`
}

// StorageConfig selects where plan records are persisted.
type StorageConfig struct {
	Backend      string `yaml:"backend"`      // memory, redis
	RedisAddress string `yaml:"redisAddress"` // host:port, required for redis
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:            constants.DefaultServerAddress,
		RateLimitPerMinute: constants.DefaultRateLimitPerMinute,
		Storage: StorageConfig{
			Backend: constants.StorageBackendMemory,
		},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RateLimitPerMinute <= 0 {
		c.RateLimitPerMinute = constants.DefaultRateLimitPerMinute
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = constants.StorageBackendMemory
	}
	if err := validation.ValidateStorageBackend(c.Storage.Backend); err != nil {
		return err
	}
	if c.Storage.Backend == constants.StorageBackendRedis && c.Storage.RedisAddress == "" {
		return fmt.Errorf("redis storage backend requires a redisAddress")
	}
	return nil
}
