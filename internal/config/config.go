package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver: mysql or sqlite
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name (file path for sqlite)
	JWTSecret     string        // JWT secret key
	JWTTTL        time.Duration // Token lifetime
	RedisAddr     string        // Redis server address, empty disables the read cache
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	CacheTTL      time.Duration // Lifetime of cached balances and history pages
	LedgerTimeout time.Duration // Upper bound for one ledger unit, lock wait included
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:       getEnv("APP_PORT", "4000"),                   // Same default port as the browser UI expects
		DBDriver:      getEnv("DB_DRIVER", "mysql"),                 // Database driver
		DBUser:        os.Getenv("DB_USER"),                         // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),               // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                    // Database port
		DBName:        getEnv("DB_NAME", "cassino"),                 // Database name
		JWTSecret:     getEnv("JWT_SECRET", "devsecret"),            // JWT secret key
		JWTTTL:        getDuration("JWT_TTL", 7*24*time.Hour),       // Tokens live a week
		RedisAddr:     os.Getenv("REDIS_ADDR"),                      // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:       redisDB,                                      // Redis database number
		CacheTTL:      getDuration("CACHE_TTL", 60*time.Second),     // Cache entries live a minute
		LedgerTimeout: getDuration("LEDGER_TIMEOUT", 5*time.Second), // Ledger unit deadline
		IsProd:        os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBName + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)" // File path plus pragmas
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the variable or def when unset
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDuration parses a Go duration string, falling back to def on absence or error
func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
