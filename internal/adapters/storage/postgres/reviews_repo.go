package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/reviews"
)

type ReviewsRepo struct {
	db *sql.DB
}

func NewReviewsRepo(db *sql.DB) *ReviewsRepo {
	return &ReviewsRepo{db: db}
}

const reviewColumns = `id, pet_id, author_id, rating, title, content, created_at, updated_at`

func (r *ReviewsRepo) Create(ctx context.Context, rv reviews.Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (`+reviewColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`, rv.ID, rv.PetID, rv.AuthorID, rv.Rating, rv.Title, rv.Content, rv.CreatedAt, rv.UpdatedAt)
	if err != nil {
		return mapError(err, constraintErrors{foreignKey: apperrors.ErrNotFound})
	}
	return nil
}

func (r *ReviewsRepo) Update(ctx context.Context, rv reviews.Review) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET rating = $2, title = $3, content = $4, updated_at = $5
		WHERE id = $1
	`, rv.ID, rv.Rating, rv.Title, rv.Content, rv.UpdatedAt)
	if err != nil {
		return mapError(err, constraintErrors{})
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReviewsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ReviewsRepo) GetByID(ctx context.Context, id string) (reviews.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return reviews.Review{}, apperrors.ErrNotFound
	}
	return rv, err
}

func (r *ReviewsRepo) List(ctx context.Context, f reviews.ListFilter) ([]reviews.Review, error) {
	var (
		conds []string
		args  []any
	)
	if f.PetID != "" {
		args = append(args, f.PetID)
		conds = append(conds, fmt.Sprintf("pet_id = $%d", len(args)))
	}
	if f.AuthorID != "" {
		args = append(args, f.AuthorID)
		conds = append(conds, fmt.Sprintf("author_id = $%d", len(args)))
	}

	q := `SELECT ` + reviewColumns + ` FROM reviews`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reviews.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(row rowScanner) (reviews.Review, error) {
	var rv reviews.Review
	err := row.Scan(&rv.ID, &rv.PetID, &rv.AuthorID, &rv.Rating, &rv.Title, &rv.Content, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}
