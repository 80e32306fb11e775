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
	Port           string
	JWTSecret      string
	MongoURI       string
	DBName         string
	SkipAuth       bool
	Environment    string
	AppId          string
	LogFile        string // Rotating log file, empty disables the file sink
	RequestTimeout time.Duration
	CORSOrigins    string

	// Storage metrics collaborator
	StorageSource  string // "mongo" | "minio"
	StorageTotalMB float64
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	// Usage metrics collaborator
	UsageSource   string // "redis" | "http" | "none"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UsageRedisKey string
	UsageURL      string
	UsageTimeout  time.Duration

	SnapshotSchedule string // cron spec, empty disables snapshots
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "studio-admin"),
		SkipAuth:       getEnvBool("SKIP_AUTH", false),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AppId:          getEnv("APP_ID", "studio-admin"),
		LogFile:        getEnv("LOG_FILE", ""),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001"),

		StorageSource:  strings.ToLower(getEnv("STORAGE_SOURCE", "mongo")),
		StorageTotalMB: getEnvFloat("STORAGE_TOTAL_MB", 512),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "studio-assets"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		UsageRedisKey: getEnv("USAGE_REDIS_KEY", "member_usage_seconds"),
		UsageURL:      getEnv("USAGE_URL", ""),
		UsageTimeout:  getEnvDuration("USAGE_TIMEOUT", 5*time.Second),

		SnapshotSchedule: getEnv("STATS_SNAPSHOT_SCHEDULE", "@hourly"),
	}

	cfg.UsageSource = strings.ToLower(getEnv("USAGE_SOURCE", defaultUsageSource(cfg)))

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultUsageSource(cfg *Config) string {
	switch {
	case cfg.RedisAddr != "":
		return "redis"
	case cfg.UsageURL != "":
		return "http"
	default:
		return "none"
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		return value == "true" || value == "1"
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid integer for %s: %q, using %d", key, value, fallback)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid number for %s: %q, using %v", key, value, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s: %q, using %s", key, value, fallback)
	}
	return fallback
}
