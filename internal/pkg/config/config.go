package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Storage StorageConfig
	Upload  UploadConfig
}

type StorageConfig struct {
	// DataDir holds the JSON array files (clients, users, states, cities).
	DataDir string `env:"DATA_DIR, default=data"`
	// IconDir holds one uploaded image per client id. Paths recorded on
	// client records are relative to the process working directory, so the
	// default keeps them inside DataDir.
	IconDir string `env:"ICON_DIR, default=data/user_icon"`
}

type UploadConfig struct {
	// MaxBytes caps uploaded image size. Default 15 MiB.
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES, default=15728640"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
