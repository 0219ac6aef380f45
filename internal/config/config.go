// Package config loads runtime settings for the converter from environment
// variables (populated from a .env file in main.go).
package config

import (
	"errors"
	"os"

	"github.com/BartekS5/sde2csv/pkg/utils"
)

// Config holds all configuration for the application,
// typically loaded from environment variables.
type Config struct {
	Language      string
	SQLDriver     string
	SQLConnString string
	LogFile       string
}

// LoadConfig loads application settings from environment variables. Every
// setting is optional; the database sinks check for what they need.
func LoadConfig() *Config {
	lang := os.Getenv("SDE_LANGUAGE")
	if lang == "" {
		lang = utils.DefaultLanguage
	}

	return &Config{
		Language:      lang,
		SQLDriver:     os.Getenv("SQL_DRIVER"),
		SQLConnString: os.Getenv("SQL_CONNECTION_STRING"),
		LogFile:       os.Getenv("LOG_FILE"),
	}
}

// RequireSQL checks that a database sink can be opened.
func (c *Config) RequireSQL() error {
	if c.SQLDriver == "" {
		return errors.New("SQL_DRIVER environment variable not set")
	}
	if c.SQLConnString == "" {
		return errors.New("SQL_CONNECTION_STRING environment variable not set")
	}
	return nil
}
