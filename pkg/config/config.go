package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config - application configuration, read once from the environment at
// startup and threaded through constructors.
type Config struct {
	// Database
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBTimeout         time.Duration

	// Server
	ServerPort  string
	CORSOrigins []string

	// Security
	Argon2Time        uint32
	Argon2MemoryKiB   uint32
	Argon2Parallelism uint8

	// External providers
	PlacesAPIKey      string
	GeolocationAPIKey string
	ProviderTimeout   time.Duration

	// Rate limiting
	RateLimitRPS   int
	RateLimitBurst int

	// Environment
	Debug       bool
	Environment string // "development", "production"
}

// Load - build the configuration from environment variables with defaults.
func Load() *Config {
	cfg := &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "jobconnect"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "jobconnect"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 1),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		DBTimeout:         getEnvDuration("DB_TIMEOUT", 5*time.Second),

		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		Argon2Time:        uint32(getEnvInt("ARGON2_TIME_COST", 3)),
		Argon2MemoryKiB:   uint32(getEnvInt("ARGON2_MEMORY_KIB", 65536)),
		Argon2Parallelism: uint8(getEnvInt("ARGON2_PARALLELISM", 4)),

		PlacesAPIKey:      getEnv("PLACES_API_KEY", ""),
		GeolocationAPIKey: getEnv("GEOLOCATION_API_KEY", ""),
		ProviderTimeout:   getEnvDuration("PROVIDER_TIMEOUT", 10*time.Second),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),

		Debug:       getEnvBool("DEBUG", true),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	log.Println("⚙️ Configuration loaded:")
	log.Printf("   DB: %s@%s:%s/%s", cfg.DBUser, cfg.DBHost, cfg.DBPort, cfg.DBName)
	log.Printf("   Server Port: %s", cfg.ServerPort)
	log.Printf("   Places API Key: %s", maskString(cfg.PlacesAPIKey))
	log.Printf("   Environment: %s", cfg.Environment)

	return cfg
}

// getEnv - environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// maskString - hide secrets in startup logs (abcdef123456 -> ab***3456)
func maskString(s string) string {
	if len(s) < 4 {
		return "***"
	}
	if len(s) < 8 {
		return s[:2] + "***"
	}
	return s[:2] + "***" + s[len(s)-4:]
}

// IsDevelopment - running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction - running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
