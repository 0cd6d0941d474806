package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string
	FrontendURL    string

	JWTSecret     string
	MatchTokenTTL time.Duration

	RedisURL         string
	RedisPassword    string
	RedisDB          int
	DecisionCacheTTL time.Duration

	SearchTimeout    time.Duration
	MatchIdleTimeout time.Duration
	CleanupInterval  time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Frontend URL + localhost + CSV values
	allowedOrigins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	if allowedOriginsStr != "" {
		for _, origin := range strings.Split(allowedOriginsStr, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Security
	jwtSecret := GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	matchTokenTTLMin := GetEnvAsPositiveInt("MATCH_TOKEN_TTL_MINUTES", 120)

	// Redis decision cache
	redisURL := GetEnv("REDIS_URL", "localhost:6379")
	redisPassword := GetEnv("REDIS_PASSWORD", "")
	redisDB := GetEnvAsInt("REDIS_DB", 0)
	cacheTTLMin := GetEnvAsInt("DECISION_CACHE_TTL_MINUTES", 30)

	// Engine & matches
	searchTimeoutMs := GetEnvAsInt("SEARCH_TIMEOUT_MS", 8000)
	idleTimeoutMin := GetEnvAsPositiveInt("MATCH_IDLE_TIMEOUT_MINUTES", 60)
	cleanupIntervalMin := GetEnvAsPositiveInt("CLEANUP_INTERVAL_MINUTES", 10)

	AppConfig = &Config{
		Port:             port,
		Environment:      GetEnv("ENVIRONMENT", "development"),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
		AllowedOrigins:   allowedOrigins,
		FrontendURL:      frontendURL,
		JWTSecret:        jwtSecret,
		MatchTokenTTL:    time.Duration(matchTokenTTLMin) * time.Minute,
		RedisURL:         redisURL,
		RedisPassword:    redisPassword,
		RedisDB:          redisDB,
		DecisionCacheTTL: time.Duration(cacheTTLMin) * time.Minute,
		SearchTimeout:    time.Duration(searchTimeoutMs) * time.Millisecond,
		MatchIdleTimeout: time.Duration(idleTimeoutMin) * time.Minute,
		CleanupInterval:  time.Duration(cleanupIntervalMin) * time.Minute,
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid-integer-env")
		return defaultValue
	}
	return value
}

// GetEnvAsPositiveInt is GetEnvAsInt for settings where zero or a negative
// value is meaningless, such as ticker intervals.
func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Warn().Str("key", key).Int("value", value).Int("default", defaultValue).Msg("non-positive-env")
		return defaultValue
	}
	return value
}
