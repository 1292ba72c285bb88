package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	p.id, p.name, p.breed_id, b.name, p.age,
	p.description, p.health_status, p.status, p.gender,
	p.posted_by, p.arrival_date, p.created_at, p.updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, breed_id, age,
			description, health_status, status, gender,
			posted_by, arrival_date, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		p.ID,
		p.Name,
		p.BreedID,
		p.Age,
		p.Description,
		p.HealthStatus,
		string(p.Status),
		string(p.Gender),
		toNullString(p.PostedBy),
		p.ArrivalDate,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return mapError(err, constraintErrors{foreignKey: apperrors.ErrNotFound})
	}
	return nil
}

// Update no escribe status ni posted_by.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed_id = $3,
			age = $4,
			description = $5,
			health_status = $6,
			gender = $7,
			updated_at = $8
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.BreedID,
		p.Age,
		p.Description,
		p.HealthStatus,
		string(p.Gender),
		p.UpdatedAt,
	)
	if err != nil {
		return mapError(err, constraintErrors{foreignKey: apperrors.ErrNotFound})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) SetStatus(ctx context.Context, id string, status pets.Status, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets SET status = $2, updated_at = $3 WHERE id = $1
	`, id, string(status), at)
	if err != nil {
		return mapError(err, constraintErrors{})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets p
		JOIN breeds b ON b.id = p.breed_id
		WHERE p.id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, apperrors.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

// Delete: solicitudes y reseñas caen por ON DELETE CASCADE.
func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	where, args := petWhere(f)

	q := `SELECT ` + petColumns + `
		FROM pets p
		JOIN breeds b ON b.id = p.breed_id` + where + `
		ORDER BY p.created_at DESC, p.id ASC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Count(ctx context.Context, f pets.ListFilter) (int, error) {
	where, args := petWhere(f)

	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*)
		FROM pets p
		JOIN breeds b ON b.id = p.breed_id`+where, args...).Scan(&n)
	return n, err
}

// petWhere arma el WHERE con placeholders numerados.
func petWhere(f pets.ListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if len(f.Statuses) > 0 {
		st := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			st = append(st, string(s))
		}
		add("p.status = ANY($%d)", st)
	}
	if f.Gender != "" {
		add("p.gender = $%d", string(f.Gender))
	}
	if f.BreedID != "" {
		add("p.breed_id = $%d", f.BreedID)
	}
	if f.BreedName != "" {
		add("b.name ILIKE $%d", likePattern(f.BreedName))
	}
	if f.Query != "" {
		args = append(args, likePattern(f.Query))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.name ILIKE $%d OR b.name ILIKE $%d OR p.description ILIKE $%d)", n, n, n))
	}
	if f.PostedBy != "" {
		add("p.posted_by = $%d", f.PostedBy)
	}
	if len(f.IDs) > 0 {
		add("p.id = ANY($%d)", f.IDs)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}

// likePattern escapa los comodines de LIKE del texto del usuario.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p        pets.Pet
		status   string
		gender   string
		postedBy sql.NullString
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.BreedID,
		&p.BreedName,
		&p.Age,
		&p.Description,
		&p.HealthStatus,
		&status,
		&gender,
		&postedBy,
		&p.ArrivalDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Status = pets.Status(status)
	p.Gender = pets.Gender(gender)
	p.PostedBy = postedBy.String
	return p, nil
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
