package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv      = "local"
	defaultLogLevel = "info"
	defaultDataDir  = ".resolucity"
	defaultDriver   = "file"
	defaultFileName = "resolucity.json"
	defaultDBName   = "resolucity.db"
	DriverFile      = "file"
	DriverSQLite    = "sqlite"
)

type Config struct {
	Env         string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
	DataDir     string `mapstructure:"data_dir"`
	Driver      string `mapstructure:"storage_driver"`
	StoragePath string `mapstructure:"storage_path"`
}

// MustLoad loads the client configuration from the environment, with the
// data directory defaulting to ~/.resolucity.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); err == nil {
		_ = godotenv.Load(envPath)
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("STORAGE_DRIVER", defaultDriver)

	cfg := &Config{
		Env:         viper.GetString("APP_ENV"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
		DataDir:     viper.GetString("DATA_DIR"),
		Driver:      viper.GetString("STORAGE_DRIVER"),
		StoragePath: viper.GetString("STORAGE_PATH"),
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DataDir = filepath.Join(home, defaultDataDir)
	}

	if cfg.StoragePath == "" {
		name := defaultFileName
		if cfg.Driver == DriverSQLite {
			name = defaultDBName
		}
		cfg.StoragePath = filepath.Join(cfg.DataDir, name)
	}

	return cfg
}
