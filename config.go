package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultEncoding = "windows-1252"

type config struct {
	// Encoding is the fallback charset for cue sheets that are not
	// valid UTF-8, as an IANA name.
	Encoding string

	LogLevel logrus.Level
}

// loadConfig reads defaults from a .env file (if present) and the
// environment. Command line flags override both.
func loadConfig() (*config, error) {
	_ = godotenv.Load()

	cfg := &config{
		Encoding: defaultEncoding,
		LogLevel: logrus.InfoLevel,
	}
	if v := os.Getenv("CUESHEET_ENCODING"); v != "" {
		cfg.Encoding = v
	}
	if v := os.Getenv("CUESHEET_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("CUESHEET_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
