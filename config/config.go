package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	DBDriver       string
	MongoURI       string
	MongoDB        string
	DatabaseURL    string
	NATSURL        string
	NATSPrefix     string
	MediaRoot      string
	LogLevel       string
	RequestTimeout time.Duration

	DefaultPageSize int
	MaxPageSize     int
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

// LoadConfig reads envFiles (".env" when none are given) and then the
// environment. A missing env file is not an error.
func LoadConfig(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No env file loaded, using system environment variables", "error", err)
	}

	return Config{
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 72*time.Hour),
		DBDriver:       getEnv("DB_DRIVER", DriverMongo),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "postboard"),
		DatabaseURL:    getEnv("DATABASE_URL", "postboard.db"),
		NATSURL:        getEnv("NATS_URL", ""),
		NATSPrefix:     getEnv("NATS_SUBJECT_PREFIX", "postboard"),
		MediaRoot:      getEnv("MEDIA_ROOT", "./uploads"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),

		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
	}
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverMongo, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE %d exceeds MAX_PAGE_SIZE %d", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// DSN returns the connection string for the selected driver.
func (c Config) DSN() string {
	if c.DBDriver == DriverMongo {
		return c.MongoURI
	}
	return c.DatabaseURL
}
