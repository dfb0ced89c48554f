package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "8080"
	defaultOpenAIModel = "gpt-3.5-turbo"
	defaultRateLimit   = "120-M"
	defaultDBMaxConns  = 5
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	LoadDotEnv()

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	databaseURL, err := LoadDatabaseURL()
	if err != nil {
		return nil, err
	}

	maxConns := int32(defaultDBMaxConns)
	if raw := os.Getenv("DB_MAX_CONNS"); raw != "" {
		val, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || val < 1 {
			return nil, fmt.Errorf("DB_MAX_CONNS must be a positive integer, got %q", raw)
		}

		maxConns = int32(val)
	}

	autoMigrate := false
	if raw := os.Getenv("AUTO_MIGRATE"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("AUTO_MIGRATE must be a boolean, got %q", raw)
		}

		autoMigrate = val
	}

	return &Config{
		Port:               getenv("PORT", defaultPort),
		Environment:        getenv("ENVIRONMENT", "development"),
		OpenAIKey:          openaiKey,
		OpenAIModel:        getenv("OPENAI_MODEL", defaultOpenAIModel),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		DatabaseURL:        databaseURL,
		DBMaxConns:         maxConns,
		AutoMigrate:        autoMigrate,
		RedisURL:           os.Getenv("REDIS_URL"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RateLimit:          getenv("RATE_LIMIT", defaultRateLimit),
	}, nil
}

// reads .env into the process environment when present
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}
}

// returns DATABASE_URL, or builds one from the DB_* connection parameters
func LoadDatabaseURL() (string, error) {
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		return raw, nil
	}

	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("DATABASE_URL or DB_PASSWORD environment variable is required")
	}

	return BuildDatabaseURL(
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		getenv("DB_NAME", "ask_ayo"),
		getenv("DB_USER", "postgres"),
		password,
		getenv("DB_SSLMODE", "disable"),
	), nil
}

// assembles a postgres:// URL, escaping credentials
func BuildDatabaseURL(host, port, name, user, password, sslMode string) string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}

	if sslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{sslMode}}.Encode()
	}

	return u.String()
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return fallback
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
