package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	ServerAddr     string
	GinMode        string
	StorageDriver  string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	SQLitePath     string
	SeedSampleData bool
	RedisHost      string
	RedisPort      string
	SessionSecret  string
	OpenAIAPIKey   string
	FrameAncestors []string
	PlatformURLs   map[string]string
}

// Load reads the configuration from the environment. Values from a .env file in the
// working directory are applied first without overriding variables already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	driver := strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory))

	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		StorageDriver:  driver,
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", defaultDBPort(driver)),
		DBUser:         getEnv("DB_USER", "realty"),
		DBPassword:     getEnv("DB_PASSWORD", "realtypassword"),
		DBName:         getEnv("DB_NAME", "realty_dashboard"),
		SQLitePath:     getEnv("SQLITE_PATH", "realty_dashboard.db"),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", true),
		RedisHost:      getEnv("REDIS_HOST", ""),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		SessionSecret:  getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		FrameAncestors: strings.Fields(getEnv("FRAME_ANCESTORS", "")),
		PlatformURLs: map[string]string{
			"mls":      getEnv("PLATFORM_URL_MLS", ""),
			"sisu":     getEnv("PLATFORM_URL_SISU", ""),
			"dotloop":  getEnv("PLATFORM_URL_DOTLOOP", ""),
			"skyslope": getEnv("PLATFORM_URL_SKYSLOPE", ""),
		},
	}
}

// UsesRedisSessions reports whether sessions should be kept in Redis instead of a cookie
func (c *Config) UsesRedisSessions() bool {
	return c.RedisHost != ""
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func defaultDBPort(driver string) string {
	if driver == DriverPostgres {
		return "5432"
	}
	return "3306"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
