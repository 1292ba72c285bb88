package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/breeds"
)

type BreedsRepo struct {
	db *sql.DB
}

func NewBreedsRepo(db *sql.DB) *BreedsRepo {
	return &BreedsRepo{db: db}
}

// GetOrCreate es seguro ante carreras: ON CONFLICT DO NOTHING y luego se lee
// la fila ganadora.
func (r *BreedsRepo) GetOrCreate(ctx context.Context, b breeds.Breed) (breeds.Breed, bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO breeds (id, name, size, temperament, description, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (name) DO NOTHING
	`, b.ID, b.Name, string(b.Size), b.Temperament, b.Description, b.CreatedAt)
	if err != nil {
		return breeds.Breed{}, false, fmt.Errorf("insert breed: %w", mapError(err, constraintErrors{}))
	}
	n, _ := res.RowsAffected()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, size, temperament, description, created_at
		FROM breeds
		WHERE name = $1
	`, b.Name)
	out, err := scanBreed(row)
	if err != nil {
		return breeds.Breed{}, false, err
	}
	return out, n == 1, nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, size, temperament, description, created_at
		FROM breeds
		WHERE id = $1
	`, id)
	return scanBreed(row)
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, size, temperament, description, created_at
		FROM breeds
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]breeds.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BreedsRepo) Update(ctx context.Context, b breeds.Breed) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE breeds
		SET name = $2, size = $3, temperament = $4, description = $5
		WHERE id = $1
	`, b.ID, b.Name, string(b.Size), b.Temperament, b.Description)
	if err != nil {
		return mapError(err, constraintErrors{unique: apperrors.ErrConflict})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete: el FK ON DELETE RESTRICT de pets lo bloquea mientras haya mascotas.
func (r *BreedsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breeds WHERE id = $1`, id)
	if err != nil {
		return mapError(err, constraintErrors{foreignKey: apperrors.ErrConflict})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBreed(row rowScanner) (breeds.Breed, error) {
	var (
		b    breeds.Breed
		size string
	)
	if err := row.Scan(&b.ID, &b.Name, &size, &b.Temperament, &b.Description, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return breeds.Breed{}, apperrors.ErrNotFound
		}
		return breeds.Breed{}, err
	}
	b.Size = breeds.Size(size)
	return b, nil
}
