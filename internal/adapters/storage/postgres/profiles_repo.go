package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

const profileColumns = `
	id, user_id, phone, address, city, state, zip_code, bio,
	is_verified, created_at, updated_at`

func (r *ProfilesRepo) GetOrCreate(ctx context.Context, p profiles.Profile) (profiles.Profile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (id, user_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id) DO NOTHING
	`, p.ID, p.UserID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return profiles.Profile{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE id = $1`, id)
	return scanProfile(row)
}

func (r *ProfilesRepo) GetByUserID(ctx context.Context, userID string) (profiles.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

// Update no toca user_id ni is_verified.
func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE user_profiles
		SET
			phone = $2,
			address = $3,
			city = $4,
			state = $5,
			zip_code = $6,
			bio = $7,
			updated_at = $8
		WHERE id = $1
	`, p.ID, p.Phone, p.Address, p.City, p.State, p.ZipCode, p.Bio, p.UpdatedAt)
	if err != nil {
		return mapError(err, constraintErrors{})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ProfilesRepo) List(ctx context.Context) ([]profiles.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM user_profiles ORDER BY user_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profiles.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanProfile(row rowScanner) (profiles.Profile, error) {
	var p profiles.Profile
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Phone,
		&p.Address,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Bio,
		&p.IsVerified,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profiles.Profile{}, apperrors.ErrNotFound
		}
		return profiles.Profile{}, err
	}
	return p, nil
}
