package config

import (
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	LogLevel string

	HTTPAddr string

	// FrontendBaseURL is used to build public payment links
	// embedded in outbound invoices.
	FrontendBaseURL string

	// CredentialKey encrypts stored mail and payment credentials at rest.
	// Hex or base64 encoded 32-byte key.
	CredentialKey string

	// RedisAddr enables the public endpoint rate limiter when set.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	PublicRateLimit float64
	PublicRateBurst int

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int
	DBConnMaxIdleTime int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:         getenv("APP_SERVICE", "kyberbiz"),
		AppVersion:      getenv("APP_VERSION", "0.1.0"),
		Environment:     getenv("ENVIRONMENT", "development"),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		FrontendBaseURL: strings.TrimRight(getenv("FRONTEND_BASE_URL", "http://localhost:3000"), "/"),
		CredentialKey:   strings.TrimSpace(getenv("CREDENTIAL_KEY", "")),

		RedisAddr:       strings.TrimSpace(getenv("REDIS_ADDR", "")),
		RedisPassword:   getenv("REDIS_PASSWORD", ""),
		RedisDB:         getenvInt("REDIS_DB", 0),
		PublicRateLimit: getenvFloat("PUBLIC_RATE_LIMIT", 0.5),
		PublicRateBurst: getenvInt("PUBLIC_RATE_BURST", 30),

		DBType:            getenv("DATABASE_TYPE", "postgres"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "5432"),
		DBName:            getenv("DATABASE_NAME", "kyberbiz"),
		DBUser:            getenv("DATABASE_USER", "postgres"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),
		DBConnMaxIdleTime: getenvInt("DATABASE_CONN_MAX_IDLE_TIME", 60),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Module wires application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(NewDocumentProfileHolder),
)
