package postgres

import (
	"context"
	"database/sql"
	"strings"

	"granja-porcina/internal/domain/porcinos"
)

type PorcinosRepo struct {
	db *sql.DB
}

func NewPorcinosRepo(db *sql.DB) *PorcinosRepo {
	return &PorcinosRepo{db: db}
}

const porcinoColumns = `id, identificacion, raza, edad, peso,
	cliente_id, alimentacion_id, created_at, updated_at`

func (r *PorcinosRepo) Create(ctx context.Context, p porcinos.Porcino) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO porcinos (
			id, identificacion, raza, edad, peso,
			cliente_id, alimentacion_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.Identificacion,
		p.Raza,
		p.Edad,
		p.Peso,
		p.ClienteID,
		p.AlimentacionID,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return porcinos.ErrIdentificacionDuplicada
	}
	return err
}

func (r *PorcinosRepo) GetByID(ctx context.Context, id string) (porcinos.Porcino, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return porcinos.Porcino{}, porcinos.ErrNotFound
	}
	return scanPorcino(r.db.QueryRowContext(ctx,
		`SELECT `+porcinoColumns+` FROM porcinos WHERE id = $1`, id))
}

func (r *PorcinosRepo) GetByIdentificacion(ctx context.Context, identificacion string) (porcinos.Porcino, error) {
	identificacion = strings.TrimSpace(identificacion)
	if identificacion == "" {
		return porcinos.Porcino{}, porcinos.ErrNotFound
	}
	return scanPorcino(r.db.QueryRowContext(ctx,
		`SELECT `+porcinoColumns+` FROM porcinos WHERE identificacion = $1`, identificacion))
}

func (r *PorcinosRepo) List(ctx context.Context) ([]porcinos.Porcino, error) {
	return r.queryMany(ctx,
		`SELECT `+porcinoColumns+` FROM porcinos ORDER BY created_at ASC`)
}

func (r *PorcinosRepo) ListByCliente(ctx context.Context, clienteID string) ([]porcinos.Porcino, error) {
	return r.queryMany(ctx,
		`SELECT `+porcinoColumns+` FROM porcinos WHERE cliente_id = $1 ORDER BY created_at ASC`,
		clienteID)
}

func (r *PorcinosRepo) Update(ctx context.Context, p porcinos.Porcino) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE porcinos
		SET identificacion = $2,
			raza = $3,
			edad = $4,
			peso = $5,
			cliente_id = $6,
			alimentacion_id = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Identificacion,
		p.Raza,
		p.Edad,
		p.Peso,
		p.ClienteID,
		p.AlimentacionID,
		p.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return porcinos.ErrIdentificacionDuplicada
	}
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return porcinos.ErrNotFound
	}
	return nil
}

func (r *PorcinosRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM porcinos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return porcinos.ErrNotFound
	}
	return nil
}

func (r *PorcinosRepo) DeleteByCliente(ctx context.Context, clienteID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM porcinos WHERE cliente_id = $1`, clienteID)
	return err
}

func (r *PorcinosRepo) ExistsByAlimentacion(ctx context.Context, alimentacionID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM porcinos WHERE alimentacion_id = $1)`,
		alimentacionID).Scan(&exists)
	return exists, err
}

func (r *PorcinosRepo) queryMany(ctx context.Context, query string, args ...any) ([]porcinos.Porcino, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]porcinos.Porcino, 0)
	for rows.Next() {
		var p porcinos.Porcino
		if err := rows.Scan(
			&p.ID,
			&p.Identificacion,
			&p.Raza,
			&p.Edad,
			&p.Peso,
			&p.ClienteID,
			&p.AlimentacionID,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPorcino(row *sql.Row) (porcinos.Porcino, error) {
	var p porcinos.Porcino
	if err := row.Scan(
		&p.ID,
		&p.Identificacion,
		&p.Raza,
		&p.Edad,
		&p.Peso,
		&p.ClienteID,
		&p.AlimentacionID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return porcinos.Porcino{}, porcinos.ErrNotFound
		}
		return porcinos.Porcino{}, err
	}
	return p, nil
}
