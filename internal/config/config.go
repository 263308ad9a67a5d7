// Package config loads settings from .env, the user config file and
// STUDYTIME_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName    = "studytime"
	EnvPrefix  = "STUDYTIME"
	configName = "studytime.yml"
)

const (
	KeyDataDir        = "data_dir"
	KeyDBPath         = "db_path"
	KeyNamespace      = "namespace"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyLanguage       = "language"
	KeyNotifications  = "notifications.enabled"
	KeyInsightAPIKey  = "insight.api_key"
	KeyInsightModel   = "insight.model"
	KeyInsightURL     = "insight.endpoint"
	KeyInsightTimeout = "insight.timeout"
	KeyAPIAddr        = "api.addr"
)

type Config struct {
	File                 string
	DataDir              string
	DBPath               string
	Namespace            string
	LogLevel             string
	LogFile              string
	Language             string
	NotificationsEnabled bool
	Insight              Insight
	APIAddr              string
}

type Insight struct {
	APIKey   string
	Model    string
	Endpoint string
	Timeout  time.Duration
}

// DefaultFile returns $XDG_CONFIG_HOME/studytime/studytime.yml, with the
// usual per-OS fallback when XDG_CONFIG_HOME is unset.
func DefaultFile() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error getting user home directory: %w", err)
		}
		if runtime.GOOS == "windows" {
			configHome = filepath.Join(homeDir, "AppData", "Roaming")
		} else {
			configHome = filepath.Join(homeDir, ".config")
		}
	}
	return filepath.Join(configHome, AppName, configName), nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, "."+AppName)
}

// Load reads the configuration. An empty file means DefaultFile. A missing
// file is created with the default values.
func Load(file string) (*Config, error) {
	_ = godotenv.Load(".env")

	if file == "" {
		var err error
		if file, err = DefaultFile(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyInsightAPIKey, EnvPrefix+"_INSIGHT_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	setDefaults(v)

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// A fresh instance so environment values are not written to disk.
		defaults := viper.New()
		setDefaults(defaults)
		if err := defaults.WriteConfigAs(file); err != nil {
			return nil, fmt.Errorf("error creating config file: %w", err)
		}
	}

	return fromViper(v, file), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataDir, defaultDataDir())
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyNamespace, AppName)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLanguage, "en")
	v.SetDefault(KeyNotifications, true)
	v.SetDefault(KeyInsightAPIKey, "")
	v.SetDefault(KeyInsightModel, "gemini-2.5-flash")
	v.SetDefault(KeyInsightURL, "https://generativelanguage.googleapis.com/")
	v.SetDefault(KeyInsightTimeout, "30s")
	v.SetDefault(KeyAPIAddr, "127.0.0.1:8080")
}

func fromViper(v *viper.Viper, file string) *Config {
	dataDir := expandHome(v.GetString(KeyDataDir))
	dbPath := expandHome(v.GetString(KeyDBPath))
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, AppName+".db")
	}
	logFile := expandHome(v.GetString(KeyLogFile))
	if logFile == "" {
		logFile = filepath.Join(dataDir, AppName+".log")
	}

	return &Config{
		File:                 file,
		DataDir:              dataDir,
		DBPath:               dbPath,
		Namespace:            v.GetString(KeyNamespace),
		LogLevel:             v.GetString(KeyLogLevel),
		LogFile:              logFile,
		Language:             v.GetString(KeyLanguage),
		NotificationsEnabled: v.GetBool(KeyNotifications),
		Insight: Insight{
			APIKey:   v.GetString(KeyInsightAPIKey),
			Model:    v.GetString(KeyInsightModel),
			Endpoint: v.GetString(KeyInsightURL),
			Timeout:  v.GetDuration(KeyInsightTimeout),
		},
		APIAddr: v.GetString(KeyAPIAddr),
	}
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
