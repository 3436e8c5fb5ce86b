package postgres

import (
	"context"
	"database/sql"
	"strings"

	"granja-porcina/internal/domain/clientes"
)

type ClientesRepo struct {
	db *sql.DB
}

func NewClientesRepo(db *sql.DB) *ClientesRepo {
	return &ClientesRepo{db: db}
}

func (r *ClientesRepo) Create(ctx context.Context, c clientes.Cliente) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clientes (
			id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Cedula,
		c.Nombres,
		c.Apellidos,
		c.Direccion,
		c.Telefono,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return clientes.ErrCedulaDuplicada
	}
	return err
}

func (r *ClientesRepo) GetByID(ctx context.Context, id string) (clientes.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		FROM clientes
		WHERE id = $1
	`, id))
}

func (r *ClientesRepo) GetByCedula(ctx context.Context, cedula string) (clientes.Cliente, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		FROM clientes
		WHERE cedula = $1
	`, cedula))
}

func (r *ClientesRepo) List(ctx context.Context) ([]clientes.Cliente, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		FROM clientes
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clientes.Cliente, 0)
	for rows.Next() {
		var c clientes.Cliente
		if err := rows.Scan(
			&c.ID,
			&c.Cedula,
			&c.Nombres,
			&c.Apellidos,
			&c.Direccion,
			&c.Telefono,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientesRepo) Update(ctx context.Context, c clientes.Cliente) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clientes
		SET cedula = $2,
			nombres = $3,
			apellidos = $4,
			direccion = $5,
			telefono = $6,
			updated_at = $7
		WHERE id = $1
	`,
		c.ID,
		c.Cedula,
		c.Nombres,
		c.Apellidos,
		c.Direccion,
		c.Telefono,
		c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return clientes.ErrCedulaDuplicada
	}
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clientes.ErrNotFound
	}
	return nil
}

func (r *ClientesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clientes.ErrNotFound
	}
	return nil
}

func (r *ClientesRepo) scanOne(row *sql.Row) (clientes.Cliente, error) {
	var c clientes.Cliente
	if err := row.Scan(
		&c.ID,
		&c.Cedula,
		&c.Nombres,
		&c.Apellidos,
		&c.Direccion,
		&c.Telefono,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return clientes.Cliente{}, clientes.ErrNotFound
		}
		return clientes.Cliente{}, err
	}
	return c, nil
}
