package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	JWT       JWTConfig
	Session   SessionConfig
	Notify    NotifyConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Crypto    CryptoConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host      string
	Port      int
	PublicURL string
}

// UpstreamConfig points at the remote booking REST API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JWTConfig struct {
	Secret string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type NotifyConfig struct {
	TTL time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	Username string
	DB       int
}

type StorageConfig struct {
	Provider string // s3, r2
	S3       S3Config
}

type S3Config struct {
	BucketName string
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
}

type CryptoConfig struct {
	// SealKey is a base64-encoded 32 byte key used to seal the upstream
	// bearer token before it is written to redis.
	SealKey string
}

type RateLimitConfig struct {
	LoginPerSecond float64
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SERVER_HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			PublicURL: getEnv("PUBLIC_URL", "http://localhost:8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			Timeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 20*time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "rf_session"),
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Notify: NotifyConfig{
			TTL: getEnvAsDuration("NOTIFY_TTL", 3*time.Second),
		},
		Redis: RedisConfig{
			Addr:     fmt.Sprintf("%s:%d", getEnv("REDIS_HOST", "localhost"), getEnvAsInt("REDIS_PORT", 6379)),
			Password: getEnv("REDIS_PASSWORD", ""),
			Username: getEnv("REDIS_USERNAME", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Provider: getEnv("STORAGE_PROVIDER", "s3"),
			S3: S3Config{
				BucketName: getEnv("S3_BUCKET_NAME", ""),
				Endpoint:   getEnv("S3_ENDPOINT", ""),
				Region:     getEnv("S3_REGION", ""),
				AccessKey:  getEnv("S3_ACCESS_KEY", ""),
				SecretKey:  getEnv("S3_SECRET_KEY", ""),
			},
		},
		Crypto: CryptoConfig{
			SealKey: getEnv("SEAL_KEY", ""),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: getEnvAsFloat("LOGIN_RATE_LIMIT", 5),
		},
	}

	return cfg, nil
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
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
