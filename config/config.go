// Package config exposes process configuration for userhub, read from
// environment variables (optionally seeded from a .env file) with embedded
// name/version metadata.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// LoadEnv reads a .env file from the working directory if one exists.
// Real environment variables always win over .env entries.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("USERHUB_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("USERHUB_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("USERHUB_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("USERHUB_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

// GetSettingsPath returns the optional TOML settings file location.
func GetSettingsPath() string {
	settingsPath := os.Getenv("USERHUB_SETTINGS")
	if settingsPath == "" {
		settingsPath = "userhub.toml"
	}
	return settingsPath
}

// GetTokenSecret returns the JWT signing secret. Empty means the server
// generates an ephemeral one at startup, so tokens die with the process.
func GetTokenSecret() string {
	return os.Getenv("USERHUB_TOKEN_SECRET")
}
