// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rovshanmuradov/assetmath/internal/asset"
)

type Config struct {
	DefaultPrecision int    `mapstructure:"default_precision"`
	DefaultSymbol    string `mapstructure:"default_symbol"`
	Delimiter        string `mapstructure:"delimiter"`
	DebugLogging     bool   `mapstructure:"debug_logging"`
	LogFile          string `mapstructure:"log_file"`
	LogMaxSize       int    `mapstructure:"log_max_size"`
	LogMaxBackups    int    `mapstructure:"log_max_backups"`
}

const (
	DefaultPrecision  = 4
	DefaultSymbol     = "EOS"
	DefaultDelimiter  = ","
	DefaultLogFile    = "assetmath.log"
	DefaultLogMaxSize = 10
	DefaultLogBackups = 3

	EnvPrefix = "ASSETMATH"
)

// LoadConfig читает конфигурацию из файла (json/yaml/toml по расширению),
// переменные окружения ASSETMATH_* имеют приоритет над файлом.
func LoadConfig(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return decode(v)
}

// Default возвращает конфигурацию без файла: значения по умолчанию + окружение.
func Default() (*Config, error) {
	return decode(newViper())
}

// Symbol возвращает символ по умолчанию из конфигурации
func (c *Config) Symbol() asset.Symbol {
	return asset.Symbol{Code: c.DefaultSymbol, Precision: uint8(c.DefaultPrecision)}
}

func newViper() *viper.Viper {
	v := viper.New()

	defaults := map[string]interface{}{
		"default_precision": DefaultPrecision,
		"default_symbol":    DefaultSymbol,
		"delimiter":         DefaultDelimiter,
		"debug_logging":     false,
		"log_file":          DefaultLogFile,
		"log_max_size":      DefaultLogMaxSize,
		"log_max_backups":   DefaultLogBackups,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.DefaultPrecision < 0 || cfg.DefaultPrecision > asset.MaxPrecision {
		return fmt.Errorf("invalid default_precision %d", cfg.DefaultPrecision)
	}
	if _, err := asset.NewSymbol(cfg.DefaultSymbol, uint8(cfg.DefaultPrecision)); err != nil {
		return fmt.Errorf("invalid default_symbol: %w", err)
	}
	if cfg.Delimiter == "" {
		return errors.New("delimiter is empty")
	}
	if cfg.LogFile == "" {
		return errors.New("log_file is empty")
	}
	if cfg.LogMaxSize <= 0 {
		return errors.New("invalid log_max_size")
	}
	if cfg.LogMaxBackups < 0 {
		return errors.New("invalid log_max_backups")
	}
	return nil
}
