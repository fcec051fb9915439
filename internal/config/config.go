package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPPort            string
	MongoURI            string
	MongoDBName         string
	MongoConnectTimeout time.Duration
	MongoSelectTimeout  time.Duration
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
}

// Load reads configuration from the environment, optionally seeded
// from a .env file. A missing .env is not an error.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			log.Info().Str("file", envFile).Msg("loaded environment file")
		}
	}

	return &Config{
		HTTPPort:            getEnv("HTTP_PORT", "5000"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGO_DB_NAME", "stylevault"),
		MongoConnectTimeout: getDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		MongoSelectTimeout:  getDuration("MONGO_SELECT_TIMEOUT", 5*time.Second),
		MongoMaxPoolSize:    getUint("MONGO_MAX_POOL_SIZE", 100),
		MongoMinPoolSize:    getUint("MONGO_MIN_POOL_SIZE", 10),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout:     getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return defaultValue
	}
	return d
}

func getUint(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid number, using default")
		return defaultValue
	}
	return n
}
