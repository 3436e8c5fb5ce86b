package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reúne toda la configuración del proceso. Todo sale de env;
// un archivo .env en el cwd se carga primero si existe (dev).
type Config struct {
	Addr       string
	DBDSN      string // si viene, se usa Postgres
	SQLitePath string // si no hay DSN pero viene esto, SQLite
	LogLevel   string
	LogFormat  string
	AppName    string
}

func Load() Config {
	// Ignorado si no hay .env; las vars ya exportadas tienen prioridad.
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	return Config{
		Addr:       addr,
		DBDSN:      os.Getenv("DB_DSN"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		LogFormat:  os.Getenv("LOG_FORMAT"),
		AppName:    envOr("APP_NAME", "granja-porcina"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
