// Package config initialises the application paths and the default timer
// settings from the config file
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

var (
	configDir      = "pomo"
	configFileName = "config.yml"
	dbFileName     = "pomo.db"
	statusFileName = "status.json"
	logFileName    = "pomo.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config, data, and log file locations using
// the XDG base directories. A POMO_ENV value suffixes every file name so
// development and test runs never touch real data.
func InitializePaths() {
	pomoEnv := strings.TrimSpace(os.Getenv("POMO_ENV"))
	if pomoEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pomoEnv)
		dbFileName = fmt.Sprintf("pomo_%s.db", pomoEnv)
		statusFileName = fmt.Sprintf("status_%s.json", pomoEnv)
		logFileName = fmt.Sprintf("pomo_%s.log", pomoEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, logFileName)
}
