package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Cache       Cache       `mapstructure:",squash"`
	Dealers     Dealers     `mapstructure:",squash"`
	Pincode     Pincode     `mapstructure:",squash"`
	DataRefresh DataRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Cache controls the TTL-based cache layer of the data store
type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

// Dealers holds the reconciliation policy knobs
type Dealers struct {
	// Internal house-account prefixes excluded from merged output
	InternalPrefixes []string `mapstructure:"dealer_internal_prefixes"`
	// Monthly sales target applied when a region has no KPI entry
	DefaultStateTarget float64 `mapstructure:"dealer_default_state_target"`
}

// Pincode configures the external zip resolution API
type Pincode struct {
	BaseURL             string `mapstructure:"pincode_base_url"`
	RequestDelaySeconds int    `mapstructure:"pincode_request_delay_seconds"`
}

// DataRefresh configures the scheduled cache refresh / district resolution job
type DataRefresh struct {
	CronSchedule string `mapstructure:"data_refresh_cron"`
	Enabled      bool   `mapstructure:"data_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/yesbheem")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("DEALER_INTERNAL_PREFIXES", "yescloud,retail cloud")
	viper.SetDefault("DEALER_DEFAULT_STATE_TARGET", 500000)

	viper.SetDefault("PINCODE_BASE_URL", "https://api.postalpincode.in/pincode/")
	viper.SetDefault("PINCODE_REQUEST_DELAY_SECONDS", 1)

	viper.SetDefault("DATA_REFRESH_CRON", "*/30 * * * *") // Every 30 minutes
	viper.SetDefault("DATA_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first via godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Reading .env with viper is optional since godotenv already ran
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory:", err)
		return
	}

	// Try the usual locations for the .env file
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
