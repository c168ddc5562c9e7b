// Package config loads and hot-watches the operator-facing configuration
// for a buffer pool process.
package config

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PoolConfig is the on-disk configuration for a bufctl process.
type PoolConfig struct {
	PageFile string `mapstructure:"page_file"`
	PoolSize int    `mapstructure:"pool_size"`
	Replacer string `mapstructure:"replacer"` // fifo | lru | lru-k | lfu | clock
	LogLevel string `mapstructure:"log_level"`
}

// DefaultPoolConfig returns sane defaults for a small local pool.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		PageFile: "pool.db",
		PoolSize: 64,
		Replacer: "clock",
		LogLevel: "info",
	}
}

// LoadPoolConfig reads a YAML configuration file at path, falling back to
// DefaultPoolConfig's values for any key the file doesn't set.
func LoadPoolConfig(path string) (*PoolConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := DefaultPoolConfig()
	v.SetDefault("page_file", def.PageFile)
	v.SetDefault("pool_size", def.PoolSize)
	v.SetDefault("replacer", def.Replacer)
	v.SetDefault("log_level", def.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read pool config: %w", err)
	}

	cfg := &PoolConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal pool config: %w", err)
	}
	return cfg, nil
}

// WatchAndReload watches path for changes and invokes onChange with the
// freshly parsed config whenever it's rewritten; each reload is logged with
// its log_level and replacer. It applies nothing itself: what a change
// affects is up to onChange. A running BufferPool's frame table and
// StorageAdapter are fixed by NewBufferPool, so pool_size and page_file
// changes take effect only after a restart.
func WatchAndReload(path string, log *slog.Logger, onChange func(*PoolConfig)) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read pool config: %w", err)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg := &PoolConfig{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Warn("config reload failed", "err", err)
			return
		}
		log.Info("config reloaded", "log_level", cfg.LogLevel, "replacer", cfg.Replacer)
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}
