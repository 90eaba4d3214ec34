package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	ShutdownTimeout time.Duration

	DBDriver       string // "postgres" or "sqlite"
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string // sqlite only
	DBAutoMigrate  bool
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBLogLevel     string

	AllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Failed to read .env file:", err)
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "studentdb"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DBPath:         getEnv("DB_PATH", "grades.db"),
		DBAutoMigrate:  getEnvAsBool("DB_AUTO_MIGRATE", false),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBLogLevel:     strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),

		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
}

// PostgresDSN builds the key=value connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	dsn := "host=" + c.DBHost + " user=" + c.DBUser + " dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=" + c.DBSSLMode
	if c.DBPassword != "" {
		dsn += " password=" + c.DBPassword
	}
	return dsn
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Invalid integer for %s: %q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		log.Printf("Invalid boolean for %s: %q, using %t", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s: %q, using %s", key, value, defaultValue)
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
