package cmd

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	LogLevel      string
	AMQPURL       string
	AMQPExchange  string
	AuditSchedule string
	CORSOrigins   []string
}

var loadDotEnv sync.Once

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded once if present; real environment variables win.
func LoadConfig() Config {
	loadDotEnv.Do(func() {
		_ = godotenv.Load(".env")
	})

	return Config{
		AppEnv:        env("APP_ENV", "development"),
		HTTPPort:      env("HTTP_PORT", "8080"),
		DBHost:        env("DB_HOST", "localhost"),
		DBPort:        env("DB_PORT", "5432"),
		DBUser:        env("DB_USER", "postgres"),
		DBPassword:    env("DB_PASSWORD", ""),
		DBName:        env("DB_NAME", "scheduling"),
		DBSslMode:     env("DB_SSLMODE", "disable"),
		LogLevel:      env("LOG_LEVEL", "info"),
		AMQPURL:       env("AMQP_URL", ""),
		AMQPExchange:  env("AMQP_EXCHANGE", "scheduling.events"),
		AuditSchedule: env("AUDIT_SCHEDULE", "0 */5 * * * *"),
		CORSOrigins:   splitList(env("CORS_ORIGIN", "")),
	}
}

// DSN is the PostgreSQL connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
