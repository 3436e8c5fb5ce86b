package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea las tablas si no existen. Los UNIQUE de cedula e
// identificacion son la garantía real de unicidad; el pre-chequeo de
// los servicios es solo el camino rápido del error amigable.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clientes (
			id TEXT PRIMARY KEY,
			cedula TEXT NOT NULL UNIQUE,
			nombres TEXT NOT NULL,
			apellidos TEXT NOT NULL,
			direccion TEXT NOT NULL DEFAULT '',
			telefono TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS alimentaciones (
			id TEXT PRIMARY KEY,
			descripcion TEXT NOT NULL,
			dosis TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS porcinos (
			id TEXT PRIMARY KEY,
			identificacion TEXT NOT NULL UNIQUE,
			raza INTEGER NOT NULL,
			edad DOUBLE PRECISION NOT NULL,
			peso DOUBLE PRECISION NOT NULL,
			cliente_id TEXT NOT NULL,
			alimentacion_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS porcinos_cliente_idx ON porcinos (cliente_id)`,
		`CREATE INDEX IF NOT EXISTS porcinos_alimentacion_idx ON porcinos (alimentacion_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// isUniqueViolation detecta el 23505 de Postgres para traducirlo al
// error de duplicado del dominio.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
