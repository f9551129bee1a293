package config

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"

	"github.com/tomatick/pomo/internal/models"
)

const (
	defaultFocusMinutes      = 25
	defaultShortBreakMinutes = 5
	defaultLongBreakMinutes  = 15
	defaultLongBreakInterval = 4
	defaultPort              = 7623
)

const (
	configFocusMinutes      = "focus_mins"
	configShortBreakMinutes = "short_break_mins"
	configLongBreakMinutes  = "long_break_mins"
	configLongBreakInterval = "long_break_interval"
	configAutoStartBreak    = "auto_start_break"
	configAutoStartFocus    = "auto_start_focus"
	configNotify            = "notify"
	configSessionCmd        = "session_cmd"
	configPort              = "port"
)

var once sync.Once

var defaultSettings models.Settings

var daemonPort uint

// settingsDefaults seeds the baseline configuration values.
func settingsDefaults() {
	viper.SetDefault(configFocusMinutes, defaultFocusMinutes)
	viper.SetDefault(configShortBreakMinutes, defaultShortBreakMinutes)
	viper.SetDefault(configLongBreakMinutes, defaultLongBreakMinutes)
	viper.SetDefault(configLongBreakInterval, defaultLongBreakInterval)
	viper.SetDefault(configAutoStartBreak, true)
	viper.SetDefault(configAutoStartFocus, false)
	viper.SetDefault(configNotify, true)
	viper.SetDefault(configSessionCmd, "")
	viper.SetDefault(configPort, defaultPort)
}

// initSettings reads the config file if one exists, creating it with the
// baseline values otherwise.
func initSettings() error {
	viper.SetConfigName(
		configFileName[:len(configFileName)-len(filepath.Ext(configFileName))],
	)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Dir(configFilePath))

	settingsDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return viper.WriteConfigAs(configFilePath)
		}

		return err
	}

	return nil
}

// Defaults returns the default timer settings. Values come from the config
// file where present, falling back to the built-in baseline. Persisted
// settings overrides are merged over this value by the settings store.
func Defaults() models.Settings {
	once.Do(func() {
		err := initSettings()
		if err != nil {
			pterm.Error.Printfln("unable to initialise pomo settings: %v", err)
		}

		defaultSettings = models.Settings{
			FocusSeconds:      viper.GetInt(configFocusMinutes) * 60,
			ShortBreakSeconds: viper.GetInt(configShortBreakMinutes) * 60,
			LongBreakSeconds:  viper.GetInt(configLongBreakMinutes) * 60,
			LongBreakEvery:    viper.GetInt(configLongBreakInterval),
			AutoStartBreaks:   viper.GetBool(configAutoStartBreak),
			AutoStartFocus:    viper.GetBool(configAutoStartFocus),
			Notify:            viper.GetBool(configNotify),
			SessionCmd:        viper.GetString(configSessionCmd),
		}

		daemonPort = viper.GetUint(configPort)
	})

	return defaultSettings
}

// Port returns the daemon listen port from the config file.
func Port() uint {
	Defaults()

	return daemonPort
}
