package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Праздники по умолчанию, если HOLIDAYS не задан
var defaultHolidays = []string{
	"2024-01-26", "2024-08-15", "2024-10-02", "2024-12-25",
	"2025-01-26", "2025-08-15", "2025-10-02", "2025-12-25",
	"2026-01-26", "2026-08-15", "2026-10-02", "2026-12-25",
}

type Config struct {
	DBDSN          string
	Environment    string
	HTTPAddr       string
	MigrationsPath string
	Holidays       []string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		Environment:    os.Getenv("ENV"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	// Дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}

	// Список праздников: даты YYYY-MM-DD через запятую
	if raw := os.Getenv("HOLIDAYS"); raw != "" {
		for _, d := range strings.Split(raw, ",") {
			if d = strings.TrimSpace(d); d != "" {
				cfg.Holidays = append(cfg.Holidays, d)
			}
		}
	} else {
		cfg.Holidays = defaultHolidays
	}

	// Обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}
