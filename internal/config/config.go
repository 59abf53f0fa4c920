package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	JWT        JWTConfig
	Mongo      MongoConfig
	Cloudinary CloudinaryConfig
	Redis      RedisConfig
}

type AppConfig struct {
	Environment string
	Port        string
	FrontendURL string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type JWTConfig struct {
	SecretKey string
	ExpiresIn time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

const (
	defaultPort        = "4000"
	defaultJWTExpires  = 7 * 24 * time.Hour
	defaultFrontendURL = "http://localhost:5173"
	defaultDatabase    = "job_portal"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		Environment:  opt("APP_ENV", "production"),
		Port:         opt("PORT", defaultPort),
		FrontendURL:  opt("FRONTEND_URL", defaultFrontendURL),
		ReadTimeout:  optDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout: optDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:  optDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
	}

	cfg.JWT = JWTConfig{SecretKey: req("JWT_SECRET_KEY")}
	expires, err := parseExpiry(opt("JWT_EXPIRES", ""))
	if err != nil {
		invalid = append(invalid, fmt.Sprintf("JWT_EXPIRES (%v)", err))
	}
	cfg.JWT.ExpiresIn = expires

	cfg.Mongo = MongoConfig{
		URI:      req("MONGO_URI"),
		Database: opt("MONGO_DB", defaultDatabase),
	}

	// Missing Cloudinary credentials are a startup error rather than
	// empty-string defaults: a misconfigured media store would otherwise
	// only surface on the first resume upload.
	cfg.Cloudinary = CloudinaryConfig{
		CloudName: req("CLOUDINARY_CLIENT_NAME"),
		APIKey:    req("CLOUDINARY_CLIENT_API"),
		APISecret: req("CLOUDINARY_CLIENT_SECRET"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute),
	}

	// A broken environment is reported in one pass, not one variable at a
	// time across restarts.
	if len(missing) > 0 || len(invalid) > 0 {
		var parts []string
		if len(missing) > 0 {
			parts = append(parts, fmt.Sprintf("%v: %s", errMissingRequiredEnv, strings.Join(missing, ", ")))
		}
		if len(invalid) > 0 {
			parts = append(parts, fmt.Sprintf("invalid environment variables: %s", strings.Join(invalid, ", ")))
		}
		return Config{}, errors.New(strings.Join(parts, "; "))
	}

	return cfg, nil
}

// parseExpiry accepts Go duration strings plus a day suffix ("7d"),
// the format the deployment environment has always used for JWT_EXPIRES.
func parseExpiry(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultJWTExpires, nil
	}

	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid day count %q", raw)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %q", raw)
	}
	return d, nil
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
