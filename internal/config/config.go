package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// JWTConfig defines the token-signing configuration. The secret has no
// default on purpose: starting without one is a configuration error, not
// something to paper over per request.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Algorithm  string        `mapstructure:"algorithm"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("jwt secret is not set in config file or environment")

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling, e.g. jwt.secret -> JWT_SECRET
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// The empty default registers the key so AutomaticEnv can see
	// JWT_SECRET during Unmarshal; emptiness is still rejected below.
	viper.SetDefault("jwt.secret", "")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.path", "fitness_platform.db")
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.expiration", "30m")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on env vars and defaults.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.JWT.Secret == "" {
		return config, ErrMissingJWTSecret
	}

	return config, nil
}
