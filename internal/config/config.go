package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/RMahshie/headphone-power/internal/calculator"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Defaults DefaultsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// DefaultsConfig holds the calculator's initial form values
type DefaultsConfig struct {
	Sensitivity float64
	Impedance   float64
	Unit        calculator.Unit
	TargetSPL   float64
}

// Input returns the defaults as a calculator input
func (d DefaultsConfig) Input() calculator.Input {
	return calculator.Input{
		Sensitivity: d.Sensitivity,
		Impedance:   d.Impedance,
		Unit:        d.Unit,
		TargetSPL:   d.TargetSPL,
	}
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("DEFAULT_SENSITIVITY", 100.0)
	v.SetDefault("DEFAULT_IMPEDANCE", 32.0)
	v.SetDefault("DEFAULT_UNIT", string(calculator.DBPerMW))
	v.SetDefault("DEFAULT_TARGET_SPL", 110.0)

	// Environment variables override .env file values
	v.AutomaticEnv()

	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	// Read .env file for the current environment (may not exist)
	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .env.%s: %w", env, err)
		}
	}

	var cfg Config
	cfg.Server.Port = v.GetString("PORT")
	cfg.Server.Env = env
	cfg.Server.AllowedOrigins = splitOrigins(v.GetString("ALLOWED_ORIGINS"))
	cfg.Log.Level = v.GetString("LOG_LEVEL")
	cfg.Defaults.Sensitivity = v.GetFloat64("DEFAULT_SENSITIVITY")
	cfg.Defaults.Impedance = v.GetFloat64("DEFAULT_IMPEDANCE")
	cfg.Defaults.TargetSPL = v.GetFloat64("DEFAULT_TARGET_SPL")

	unit, err := calculator.ParseUnit(v.GetString("DEFAULT_UNIT"))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_UNIT: %w", err)
	}
	cfg.Defaults.Unit = unit

	if err := cfg.Defaults.Input().Validate(); err != nil {
		return nil, fmt.Errorf("invalid calculator defaults: %w", err)
	}

	return &cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
