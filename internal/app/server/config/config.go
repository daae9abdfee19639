package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// Storage drivers for the key/value backend.
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Logger  logger
}

type defaultConfig struct {
	RunAddress    string
	StorageDriver string
	StoragePath   string
	DatabaseURI   string
	Migrations    string
	LogLevel      string
	Env           string
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	Driver      string `env:"STORAGE_DRIVER"`
	Path        string `env:"STORAGE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func NewConfig() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:    viper.GetString("run_address"),
		StorageDriver: viper.GetString("storage_driver"),
		StoragePath:   viper.GetString("storage_path"),
		DatabaseURI:   viper.GetString("database_uri"),
		Migrations:    viper.GetString("migrations_path"),
		LogLevel:      viper.GetString("log_level"),
		Env:           viper.GetString("app_env"),
	}
	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.StorageDriver == "" {
		d.StorageDriver = DriverFile
	}
	if d.StoragePath == "" {
		d.StoragePath = "resolucity.json"
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}
	if d.Env == "" {
		d.Env = EnvLocal
	}

	return &Config{
		Env: d.Env,
		Server: server{
			RunAddress: d.RunAddress,
		},
		Storage: storage{
			Driver:      d.StorageDriver,
			Path:        d.StoragePath,
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Logger: logger{LogLevel: d.LogLevel},
	}
}
