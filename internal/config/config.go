package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      *AppConfig      `yaml:"app"`
	Database *DatabaseConfig `yaml:"database"`
	Storage  *StorageConfig  `yaml:"storage"`
	Log      *LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Name               string   `yaml:"name"`
	Version            string   `yaml:"version"`
	Environment        string   `yaml:"environment"`
	Port               int      `yaml:"port"`
	Host               string   `yaml:"host"`
	BaseURL            string   `yaml:"base_url"`
	Debug              bool     `yaml:"debug"`
	Timezone           string   `yaml:"timezone"`
	Currency           string   `yaml:"currency"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	Path            string        `yaml:"path"`
	BusyTimeout     time.Duration `yaml:"busy_timeout"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	LogQueries      bool          `yaml:"log_queries"`
}

type StorageConfig struct {
	BasePath     string `yaml:"base_path"`
	BaseURL      string `yaml:"base_url"`
	MaxImageSize int64  `yaml:"max_image_size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Caller bool   `yaml:"caller"`
	Colors bool   `yaml:"colors"`
}

func Load() (*Config, error) {
	config := &Config{
		App:      loadAppConfig(),
		Database: loadDatabaseConfig(),
		Storage:  loadStorageConfig(),
		Log:      loadLogConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:               getEnv("APP_NAME", "LuxuryWheels"),
		Version:            getEnv("APP_VERSION", "1.0.0"),
		Environment:        getEnv("APP_ENV", "development"),
		Port:               getEnvAsInt("APP_PORT", 8080),
		Host:               getEnv("APP_HOST", "localhost"),
		BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
		Debug:              getEnvAsBool("APP_DEBUG", true),
		Timezone:           getEnv("APP_TIMEZONE", "UTC"),
		Currency:           getEnv("APP_CURRENCY", "EUR"),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Path:            getEnv("DB_PATH", "luxury_wheels.db"),
		BusyTimeout:     getEnvAsDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
		ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		LogQueries:      getEnvAsBool("DB_LOG_QUERIES", false),
	}
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		BasePath:     getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:      getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
		MaxImageSize: int64(getEnvAsInt("STORAGE_MAX_IMAGE_SIZE", 5*1024*1024)),
	}
}

func loadLogConfig() *LogConfig {
	return &LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "text"),
		Output: getEnv("LOG_OUTPUT", "stdout"),
		Caller: getEnvAsBool("LOG_CALLER", false),
		Colors: getEnvAsBool("LOG_COLORS", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func IsProduction() bool {
	return getEnv("APP_ENV", "development") == "production"
}

func IsDevelopment() bool {
	return getEnv("APP_ENV", "development") == "development"
}

func IsTest() bool {
	return getEnv("APP_ENV", "development") == "test"
}
