package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingEnv is returned when a required environment variable is unset.
var ErrMissingEnv = errors.New("environment variable is not set")

// Config holds the application's configuration values.
type Config struct {
	HostIP         string        // Host IP for the server
	RESTPort       int           // Port for the REST API
	GinMode        string        // Mode for the Gin framework (e.g., release, debug, test)
	DBURI          string        // Connection URI for MongoDB
	DBName         string        // Name of the database
	RedisAddr      string        // Address of the Redis server backing the leaderboard
	RedisPassword  string        // Password for the Redis server
	LeaderboardTTL time.Duration // Lifetime of a leaderboard key after its last write
	JWTSecret      string        // Secret key for JWT signing
	JWTIssuer      string        // Issuer claim for JWTs
	LogLevel       string        // trace, debug, info, warn or error
	LogFormat      string        // console or json
	GoalMaxSteps   int           // Step budget for the goal agent
	ReflexMaxSteps int           // Step budget for the reflex agent
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	restPort, err := getEnvAsInt("REST_PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	ttl, err := getEnvAsInt("LEADERBOARD_TTL_SECONDS", 86400)
	if err != nil {
		return Config{}, err
	}
	goalSteps, err := getEnvAsInt("GOAL_MAX_STEPS", 300)
	if err != nil {
		return Config{}, err
	}
	reflexSteps, err := getEnvAsInt("REFLEX_MAX_STEPS", 500)
	if err != nil {
		return Config{}, err
	}

	return Config{
		HostIP:         getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:       restPort,
		GinMode:        getEnvWithDefault("GIN_MODE", "release"),
		DBURI:          getEnvWithDefault("DB_URI", ""),
		DBName:         getEnvWithDefault("DB_NAME", "vinom_robot"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardTTL: time.Duration(ttl) * time.Second,
		JWTSecret:      getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:      getEnvWithDefault("JWT_ISSUER", "vinom-robot"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:      getEnvWithDefault("LOG_FORMAT", "console"),
		GoalMaxSteps:   goalSteps,
		ReflexMaxSteps: reflexSteps,
	}, nil
}

// ValidateServer checks the values only the REST server needs.
func (c Config) ValidateServer() error {
	if c.DBURI == "" {
		return fmt.Errorf("%w: DB_URI", ErrMissingEnv)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET", ErrMissingEnv)
	}
	return nil
}

// getEnvAsInt retrieves an environment variable as an integer, or the default when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
