package sqlite

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
		) VALUES (?,?,?,?,?,?,?,?)
	`,
		c.ID,
		c.Cedula,
		c.Nombres,
		c.Apellidos,
		c.Direccion,
		c.Telefono,
		encodeTime(c.CreatedAt),
		encodeTime(c.UpdatedAt),
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
	return scanCliente(r.db.QueryRowContext(ctx, `
		SELECT id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		FROM clientes
		WHERE id = ?
	`, id))
}

func (r *ClientesRepo) GetByCedula(ctx context.Context, cedula string) (clientes.Cliente, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return clientes.Cliente{}, clientes.ErrNotFound
	}
	return scanCliente(r.db.QueryRowContext(ctx, `
		SELECT id, cedula, nombres, apellidos, direccion, telefono,
			created_at, updated_at
		FROM clientes
		WHERE cedula = ?
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
		var createdAt, updatedAt string
		if err := rows.Scan(
			&c.ID,
			&c.Cedula,
			&c.Nombres,
			&c.Apellidos,
			&c.Direccion,
			&c.Telefono,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}
		c.CreatedAt = decodeTime(createdAt)
		c.UpdatedAt = decodeTime(updatedAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientesRepo) Update(ctx context.Context, c clientes.Cliente) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clientes
		SET cedula = ?,
			nombres = ?,
			apellidos = ?,
			direccion = ?,
			telefono = ?,
			updated_at = ?
		WHERE id = ?
	`,
		c.Cedula,
		c.Nombres,
		c.Apellidos,
		c.Direccion,
		c.Telefono,
		encodeTime(c.UpdatedAt),
		c.ID,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clientes.ErrNotFound
	}
	return nil
}

func scanCliente(row *sql.Row) (clientes.Cliente, error) {
	var c clientes.Cliente
	var createdAt, updatedAt string
	if err := row.Scan(
		&c.ID,
		&c.Cedula,
		&c.Nombres,
		&c.Apellidos,
		&c.Direccion,
		&c.Telefono,
		&createdAt,
		&updatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return clientes.Cliente{}, clientes.ErrNotFound
		}
		return clientes.Cliente{}, err
	}
	c.CreatedAt = decodeTime(createdAt)
	c.UpdatedAt = decodeTime(updatedAt)
	return c, nil
}
