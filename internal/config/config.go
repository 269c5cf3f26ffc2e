package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Policy   PolicyConfig
	Security SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// PolicyConfig holds the royalty and currency policy constants
type PolicyConfig struct {
	Currency                string
	CreatorRoyaltyPercent   float64
	MaxArtistRoyaltyPercent float64
	MaxContractRoyaltyPct   float64
	ReplayWindowPast        time.Duration
	ReplayWindowFuture      time.Duration
	AuditRetention          time.Duration
}

// SecurityConfig holds rate limiting and nonce settings
type SecurityConfig struct {
	RateLimitWindow time.Duration
	AgentRateLimit  int
	APIRateLimit    int
	NonceTTL        time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "vortexmarket"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Policy: PolicyConfig{
			Currency:                getEnv("PLATFORM_CURRENCY", "tola_credit"),
			CreatorRoyaltyPercent:   getEnvAsFloat("CREATOR_ROYALTY_PERCENT", 5.0),
			MaxArtistRoyaltyPercent: getEnvAsFloat("MAX_ARTIST_ROYALTY_PERCENT", 15.0),
			MaxContractRoyaltyPct:   getEnvAsFloat("MAX_CONTRACT_ROYALTY_PERCENT", 20.0),
			ReplayWindowPast:        getEnvAsDuration("TX_REPLAY_WINDOW_PAST", 300*time.Second),
			ReplayWindowFuture:      getEnvAsDuration("TX_REPLAY_WINDOW_FUTURE", 60*time.Second),
			AuditRetention:          getEnvAsDuration("AUDIT_RETENTION", 90*24*time.Hour),
		},
		Security: SecurityConfig{
			RateLimitWindow: getEnvAsDuration("RATE_LIMIT_WINDOW", 60*time.Second),
			AgentRateLimit:  getEnvAsInt("AGENT_RATE_LIMIT", 10),
			APIRateLimit:    getEnvAsInt("API_RATE_LIMIT", 30),
			NonceTTL:        getEnvAsDuration("NONCE_TTL", 10*time.Minute),
		},
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
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
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
