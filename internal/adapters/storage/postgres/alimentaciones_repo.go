package postgres

import (
	"context"
	"database/sql"
	"strings"

	"granja-porcina/internal/domain/alimentaciones"
)

type AlimentacionesRepo struct {
	db *sql.DB
}

func NewAlimentacionesRepo(db *sql.DB) *AlimentacionesRepo {
	return &AlimentacionesRepo{db: db}
}

func (r *AlimentacionesRepo) Create(ctx context.Context, a alimentaciones.Alimentacion) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alimentaciones (
			id, descripcion, dosis, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		a.Descripcion,
		a.Dosis,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AlimentacionesRepo) GetByID(ctx context.Context, id string) (alimentaciones.Alimentacion, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return alimentaciones.Alimentacion{}, alimentaciones.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, descripcion, dosis, created_at, updated_at
		FROM alimentaciones
		WHERE id = $1
	`, id)

	var a alimentaciones.Alimentacion
	if err := row.Scan(&a.ID, &a.Descripcion, &a.Dosis, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return alimentaciones.Alimentacion{}, alimentaciones.ErrNotFound
		}
		return alimentaciones.Alimentacion{}, err
	}
	return a, nil
}

func (r *AlimentacionesRepo) List(ctx context.Context) ([]alimentaciones.Alimentacion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, descripcion, dosis, created_at, updated_at
		FROM alimentaciones
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]alimentaciones.Alimentacion, 0)
	for rows.Next() {
		var a alimentaciones.Alimentacion
		if err := rows.Scan(&a.ID, &a.Descripcion, &a.Dosis, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AlimentacionesRepo) Update(ctx context.Context, a alimentaciones.Alimentacion) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE alimentaciones
		SET descripcion = $2,
			dosis = $3,
			updated_at = $4
		WHERE id = $1
	`,
		a.ID,
		a.Descripcion,
		a.Dosis,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return alimentaciones.ErrNotFound
	}
	return nil
}

func (r *AlimentacionesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM alimentaciones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return alimentaciones.ErrNotFound
	}
	return nil
}
