// Package sqlite es el backend embebido: un archivo único con el
// driver puro Go de modernc, pensado para instalaciones de una sola
// máquina sin Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Open abre (o crea) la base y garantiza el esquema. Igual que en
// Postgres, los UNIQUE de cedula e identificacion son el respaldo real
// del pre-chequeo de unicidad de los servicios.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Un único writer: evita SQLITE_BUSY con el driver puro Go.
	db.SetMaxOpenConns(1)

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clientes (
			id TEXT PRIMARY KEY,
			cedula TEXT NOT NULL UNIQUE,
			nombres TEXT NOT NULL,
			apellidos TEXT NOT NULL,
			direccion TEXT NOT NULL DEFAULT '',
			telefono TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alimentaciones (
			id TEXT PRIMARY KEY,
			descripcion TEXT NOT NULL,
			dosis TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS porcinos (
			id TEXT PRIMARY KEY,
			identificacion TEXT NOT NULL UNIQUE,
			raza INTEGER NOT NULL,
			edad REAL NOT NULL,
			peso REAL NOT NULL,
			cliente_id TEXT NOT NULL,
			alimentacion_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS porcinos_cliente_idx ON porcinos (cliente_id)`,
		`CREATE INDEX IF NOT EXISTS porcinos_alimentacion_idx ON porcinos (alimentacion_id)`,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// Los timestamps se guardan como texto RFC3339Nano: el driver no tiene
// un tipo nativo de fecha y así el round-trip es exacto.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
