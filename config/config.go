package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DevJWTSecret is the development-only fallback signing secret. A production
// deployment running on it triggers a loud startup warning.
const DevJWTSecret = "dev-insecure-jwt-secret"

// Config holds application configuration loaded from environment variables.
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Host    string
	Port    string
	GinMode string

	// Database
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int32
	DBMinConns    int32
	DBMaxConnLife time.Duration

	// Redis (rate-limit counters); empty addr disables redis and falls back
	// to the in-process limiter
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Password hashing
	BcryptCost int

	// Rate limiting
	APIRateMax     int
	APIRateWindow  time.Duration
	AuthRateMax    int
	AuthRateWindow time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Migrations
	MigrationsDir string

	// Metrics endpoint toggle
	MetricsEnabled bool

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "navstation"),
		Env:     getenv("APP_ENV", "development"),
		Host:    getenv("HOST", "0.0.0.0"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    getenv("DB_PASSWORD", "postgres"),
		DBName:        getenv("DB_NAME", "navstation"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		DBMaxConns:    int32(getint("DB_MAX_CONNS", 10)),
		DBMinConns:    int32(getint("DB_MIN_CONNS", 2)),
		DBMaxConnLife: getdur("DB_MAX_CONN_LIFETIME", time.Hour),

		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", DevJWTSecret),
		TokenTTL:  getdur("TOKEN_TTL", 24*time.Hour),

		BcryptCost: getint("BCRYPT_COST", 12),

		APIRateMax:     getint("API_RATE_MAX", 100),
		APIRateWindow:  getdur("API_RATE_WINDOW", 10*time.Minute),
		AuthRateMax:    getint("AUTH_RATE_MAX", 10),
		AuthRateWindow: getdur("AUTH_RATE_WINDOW", time.Minute),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		MigrationsDir: getenv("MIGRATIONS_DIR", "db/migrations"),

		MetricsEnabled: getbool("METRICS_ENABLED", true),
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// IsProduction reports whether the process runs in production mode. Detailed
// error text never reaches clients in production, and the fallback secret
// warning fires there.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingFallbackSecret reports whether the signing secret is the baked-in
// development default.
func (c *Config) UsingFallbackSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// PostgresDSN returns a DSN compatible with pgx.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// CORSOrigins returns the allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
