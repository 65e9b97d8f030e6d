package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Schedule ScheduleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ScheduleConfig tunes the assignment engine.
type ScheduleConfig struct {
	// SupportedCinema receives the dual-duty staffing credit.
	SupportedCinema string
	// RestQuota is the number of days off targeted per staff member per week.
	RestQuota int
	// TieBreakSeed, when non-zero, switches candidate ordering from the
	// deterministic roster order to a seeded shuffle.
	TieBreakSeed int64
}

func Load() (*Config, error) {
	// A missing .env file is fine in production, env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "cineworks-roster"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Schedule engine configuration
	restQuota, err := strconv.Atoi(getEnv("SCHEDULE_REST_QUOTA", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_REST_QUOTA: %w", err)
	}

	tieBreakSeed, err := strconv.ParseInt(getEnv("SCHEDULE_TIEBREAK_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIEBREAK_SEED: %w", err)
	}

	config.Schedule = ScheduleConfig{
		SupportedCinema: getEnv("SCHEDULE_SUPPORTED_CINEMA", "OUTLET"),
		RestQuota:       restQuota,
		TieBreakSeed:    tieBreakSeed,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Schedule.SupportedCinema != "BUWON" && c.Schedule.SupportedCinema != "OUTLET" {
		return fmt.Errorf("SCHEDULE_SUPPORTED_CINEMA must be 'BUWON' or 'OUTLET'")
	}
	if c.Schedule.RestQuota < 1 {
		return fmt.Errorf("SCHEDULE_REST_QUOTA must be at least 1")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
