package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultWorkerCount = 3

type Config struct {
	DatabaseURL string
	RabbitMQURL string
	R2          R2Config
	SMTP        SMTPConfig
	WorkerCount int
	JSONLogs    bool
	Debug       bool
}

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// loadConfig collects all runtime configuration from the environment into
// one struct so nothing downstream reads os.Getenv.
func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		WorkerCount: defaultWorkerCount,
		JSONLogs:    os.Getenv("LOG_JSON") == "true",
		Debug:       os.Getenv("DEBUG") == "true",
	}

	var err error
	if cfg.DatabaseURL, err = requireEnv("DB_URL"); err != nil {
		return nil, err
	}
	if cfg.RabbitMQURL, err = requireEnv("RABBITMQ_URL"); err != nil {
		return nil, err
	}
	if cfg.R2.AccountID, err = requireEnv("R2_ACCOUNT_ID"); err != nil {
		return nil, err
	}
	if cfg.R2.Bucket, err = requireEnv("R2_BUCKET"); err != nil {
		return nil, err
	}
	if cfg.R2.AccessKey, err = requireEnv("R2_ACCESS_KEY"); err != nil {
		return nil, err
	}
	if cfg.R2.SecretKey, err = requireEnv("R2_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.SMTP.Host, err = requireEnv("SMTP_HOST"); err != nil {
		return nil, err
	}
	if cfg.SMTP.Username, err = requireEnv("SMTP_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.SMTP.Password, err = requireEnv("SMTP_PASSWORD"); err != nil {
		return nil, err
	}

	cfg.SMTP.Port = 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", raw, err)
		}
		cfg.SMTP.Port = port
	}

	cfg.SMTP.From = os.Getenv("SMTP_FROM")
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	// A hanging SMTP dial must not stall a whole shortlisting pass.
	cfg.SMTP.Timeout = 15 * time.Second
	if raw := os.Getenv("SMTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_TIMEOUT_SECONDS %q: %w", raw, err)
		}
		cfg.SMTP.Timeout = time.Duration(secs) * time.Second
	}

	if raw := os.Getenv("WORKER_COUNT"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("invalid WORKER_COUNT %q", raw)
		}
		cfg.WorkerCount = count
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("empty %s in environment", key)
	}
	return value, nil
}
