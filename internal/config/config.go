package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds client configuration values.
type Config struct {
	ServerURL      string        `mapstructure:"server_url" yaml:"server_url" validate:"required,url"`
	Token          string        `mapstructure:"token" yaml:"token"`
	LogLevel       string        `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFile        string        `mapstructure:"log_file" yaml:"log_file" validate:"required"`
	DatabasePath   string        `mapstructure:"db_path" yaml:"db_path" validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout" validate:"gt=0"`
	RetryMax       int           `mapstructure:"retry_max" yaml:"retry_max" validate:"gte=0,lte=10"`
	Realtime       bool          `mapstructure:"realtime" yaml:"realtime"`

	// MinUsernameLength is exclusive: names must be longer than this.
	MinUsernameLength  int      `mapstructure:"min_username_length" yaml:"min_username_length" validate:"gt=0"`
	ChannelTypes       []string `mapstructure:"channel_types" yaml:"channel_types" validate:"required,min=1,dive,required"`
	DefaultChannelType string   `mapstructure:"default_channel_type" yaml:"default_channel_type" validate:"required"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		ServerURL:          "http://localhost:8080",
		LogLevel:           "info",
		LogFile:            "wirechat-client.log",
		DatabasePath:       "wirechat-client.db",
		RequestTimeout:     10 * time.Second,
		RetryMax:           2,
		Realtime:           true,
		MinUsernameLength:  2,
		ChannelTypes:       []string{"gaming", "messaging", "commerce", "team", "livestream"},
		DefaultChannelType: "messaging",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
// Realtime is left alone since false is its meaningful zero value.
func (c *Config) UpdateFrom(other Config) {
	if other.ServerURL != "" {
		c.ServerURL = other.ServerURL
	}
	if other.Token != "" {
		c.Token = other.Token
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.DatabasePath != "" {
		c.DatabasePath = other.DatabasePath
	}
	if other.RequestTimeout != 0 {
		c.RequestTimeout = other.RequestTimeout
	}
	if other.RetryMax != 0 {
		c.RetryMax = other.RetryMax
	}
	if other.MinUsernameLength != 0 {
		c.MinUsernameLength = other.MinUsernameLength
	}
	if len(other.ChannelTypes) > 0 {
		c.ChannelTypes = other.ChannelTypes
	}
	if other.DefaultChannelType != "" {
		c.DefaultChannelType = other.DefaultChannelType
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
