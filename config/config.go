package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN returns the go-sql-driver/mysql data source name.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.User, c.Password, c.Host, c.Port, c.Name)
}

type Config struct {
	Addr      string
	DB        DBConfig
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string

	// CookieSecure marks the token cookie Secure; set it behind TLS.
	CookieSecure bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment values win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Addr: getenv("ADDR", ":8000"),
		DB: DBConfig{
			Host:     getenv("DB_HOST", "127.0.0.1"),
			Port:     getenv("DB_PORT", "3306"),
			User:     getenv("DB_USER", "userdesk"),
			Password: getenv("DB_PASSWORD", "userdesk_secret"),
			Name:     getenv("DB_NAME", "userdesk_db"),
		},
		JWTSecret: getenv("JWT_SECRET_KEY", "userdesk-secret-key-change-in-prod"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}

	minutes, err := strconv.Atoi(getenv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}
	if minutes <= 0 {
		return Config{}, fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: must be positive, got %d", minutes)
	}
	cfg.TokenTTL = time.Duration(minutes) * time.Minute

	cfg.CookieSecure, err = strconv.ParseBool(getenv("COOKIE_SECURE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	if _, err := strconv.Atoi(cfg.DB.Port); err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
