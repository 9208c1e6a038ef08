package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	phfwd "github.com/camelinx/phone_forward"
)

// Config holds all configuration for the command
type Config struct {
	Log         LogConfig          `mapstructure:"log"`
	Limits      LimitsConfig       `mapstructure:"limits"`
	Forwardings []ForwardingConfig `mapstructure:"forwardings" validate:"dive"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
}

// LimitsConfig bounds the size of the forwarding structure and its results
type LimitsConfig struct {
	MaxNodes   uint64 `mapstructure:"max_nodes"`
	MaxResults int    `mapstructure:"max_results" validate:"gte=0"`
}

// ForwardingConfig is a forwarding added at start-up
type ForwardingConfig struct {
	From string `mapstructure:"from" validate:"required,phonenumber"`
	To   string `mapstructure:"to" validate:"required,phonenumber,nefield=From"`
}

var configValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("phonenumber", func(fl validator.FieldLevel) bool {
		return phfwd.IsValidNumber(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("PHFWD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	// 0 means no limit
	v.SetDefault("limits.max_nodes", 0)
	v.SetDefault("limits.max_results", 0)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Options returns the phone forward options described by the limits
func (c *LimitsConfig) Options() []phfwd.Option {
	return []phfwd.Option{
		phfwd.WithMaxNodes(c.MaxNodes),
		phfwd.WithMaxResults(c.MaxResults),
	}
}
