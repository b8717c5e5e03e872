package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"salarydash/internal/engine"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DataSource    string // "csv" or "postgres"
	DataPath      string
	SchemaProfile string // "en" or "ptbr"
	CurrencyRate  float64
	Port          string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		DataSource:    getEnv("DATA_SOURCE", "csv"),
		DataPath:      getEnv("DATA_PATH", "data/salaries.csv"),
		SchemaProfile: getEnv("SCHEMA_PROFILE", "en"),
		CurrencyRate:  getEnvFloat("CURRENCY_RATE", 1.0),
		Port:          getEnv("PORT", "8080"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "salarydash"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "salarydash"),
		PostgresDB:       getEnv("POSTGRES_DB", "salaries_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// Schema resolves the schema profile to concrete column names.
// Unknown profiles fall back to the English headers.
func (c *Config) Schema() engine.Schema {
	if c.SchemaProfile == "ptbr" {
		return engine.PortugueseSchema()
	}
	return engine.EnglishSchema()
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
