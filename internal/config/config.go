package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	SalesSeedFile string
	Bootstrap     bool
	CORSOrigins   string
	RateLimit     int // requests per minute per IP, 0 = off
}

func Load() Config {
	// .env is optional; real env vars win over it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not read .env: %v", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		DBDSN:         getEnv("DB_DSN", "database.db"), // sqlite file in working dir
		LogFile:       getEnv("LOG_FILE", "./stockroom.log"),
		SalesSeedFile: getEnv("SALES_SEED_FILE", "./sales.csv"),
		Bootstrap:     getBool("BOOTSTRAP", true),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		RateLimit:     getInt("RATE_LIMIT", 0),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SALES_SEED_FILE=%s BOOTSTRAP=%t CORS_ORIGINS=%s RATE_LIMIT=%d",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.SalesSeedFile, cfg.Bootstrap, cfg.CORSOrigins, cfg.RateLimit)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("[warn] %s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		log.Printf("[warn] %s=%q is not a non-negative integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}
