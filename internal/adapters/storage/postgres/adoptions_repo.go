package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/apperrors"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const requestColumns = `
	id, pet_id, requester_id, status,
	motivation, home_type, has_other_pets, other_pets_description,
	requested_at, updated_at`

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_requests (`+requestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		req.ID,
		req.PetID,
		req.RequesterID,
		string(req.Status),
		req.Motivation,
		req.HomeType,
		req.HasOtherPets,
		req.OtherPetsDescription,
		req.RequestedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return mapError(err, constraintErrors{
			unique:     apperrors.ErrDuplicateRequest,
			foreignKey: apperrors.ErrNotFound,
		})
	}
	return nil
}

// UpdatePending: el WHERE status = 'pending' evita pisar una solicitud que
// alguien aprobó o rechazó entre la lectura y la escritura.
func (r *AdoptionsRepo) UpdatePending(ctx context.Context, req adoptions.Request) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_requests
		SET
			motivation = $2,
			home_type = $3,
			has_other_pets = $4,
			other_pets_description = $5,
			updated_at = $6
		WHERE id = $1 AND status = 'pending'
	`,
		req.ID,
		req.Motivation,
		req.HomeType,
		req.HasOtherPets,
		req.OtherPetsDescription,
		req.UpdatedAt,
	)
	if err != nil {
		return mapError(err, constraintErrors{})
	}
	n, _ := res.RowsAffected()
	if n == 1 {
		return nil
	}

	if _, err := r.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return apperrors.ErrBadState
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM adoption_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Request, error) {
	return getRequest(ctx, r.db, id)
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.Request, error) {
	var (
		conds []string
		args  []any
	)
	if f.PetID != "" {
		args = append(args, f.PetID)
		conds = append(conds, fmt.Sprintf("pet_id = $%d", len(args)))
	}
	if f.RequesterID != "" {
		args = append(args, f.RequesterID)
		conds = append(conds, fmt.Sprintf("requester_id = $%d", len(args)))
	}
	if len(f.Statuses) > 0 {
		st := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			st = append(st, string(s))
		}
		args = append(args, st)
		conds = append(conds, fmt.Sprintf("status = ANY($%d)", len(args)))
	}

	q := `SELECT ` + requestColumns + ` FROM adoption_requests`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY requested_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// ApprovePending corre en una transacción: el UPDATE condicionado a pending
// es el compare-and-swap (de dos aprobaciones simultáneas solo una ve la fila)
// y la mascota se marca adopted en la misma tx.
func (r *AdoptionsRepo) ApprovePending(ctx context.Context, id string, at time.Time) (adoptions.Request, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return adoptions.Request{}, false, fmt.Errorf("begin approve tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		UPDATE adoption_requests
		SET status = 'approved', updated_at = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING `+requestColumns, id, at)

	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		// No estaba pending (o no existe): no-op, devolvemos el estado actual.
		cur, err := getRequest(ctx, tx, id)
		if err != nil {
			return adoptions.Request{}, false, err
		}
		return cur, false, nil
	}
	if err != nil {
		return adoptions.Request{}, false, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE pets SET status = $2, updated_at = $3 WHERE id = $1
	`, req.PetID, string(pets.StatusAdopted), at)
	if err != nil {
		return adoptions.Request{}, false, err
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return adoptions.Request{}, false, apperrors.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return adoptions.Request{}, false, fmt.Errorf("commit approve tx: %w", err)
	}
	return req, true, nil
}

func (r *AdoptionsRepo) TransitionStatus(ctx context.Context, id string, from, to adoptions.Status, at time.Time) (adoptions.Request, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE adoption_requests
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING `+requestColumns, id, string(from), string(to), at)

	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		cur, err := r.GetByID(ctx, id)
		if err != nil {
			return adoptions.Request{}, false, err
		}
		return cur, false, nil
	}
	if err != nil {
		return adoptions.Request{}, false, err
	}
	return req, true, nil
}

func (r *AdoptionsRepo) CountsByPet(ctx context.Context, petIDs []string) (map[string]adoptions.Counts, error) {
	out := make(map[string]adoptions.Counts, len(petIDs))
	for _, id := range petIDs {
		out[id] = adoptions.Counts{}
	}
	if len(petIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			pet_id,
			count(*),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'approved')
		FROM adoption_requests
		WHERE pet_id = ANY($1)
		GROUP BY pet_id
	`, petIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			petID string
			c     adoptions.Counts
		)
		if err := rows.Scan(&petID, &c.Total, &c.Pending, &c.Approved); err != nil {
			return nil, err
		}
		out[petID] = c
	}
	return out, rows.Err()
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getRequest(ctx context.Context, q queryRower, id string) (adoptions.Request, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+requestColumns+`
		FROM adoption_requests
		WHERE id = $1
	`, id)
	req, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Request{}, apperrors.ErrNotFound
	}
	return req, err
}

func scanRequest(row rowScanner) (adoptions.Request, error) {
	var (
		req    adoptions.Request
		status string
	)
	if err := row.Scan(
		&req.ID,
		&req.PetID,
		&req.RequesterID,
		&status,
		&req.Motivation,
		&req.HomeType,
		&req.HasOtherPets,
		&req.OtherPetsDescription,
		&req.RequestedAt,
		&req.UpdatedAt,
	); err != nil {
		return adoptions.Request{}, err
	}
	req.Status = adoptions.Status(status)
	return req, nil
}
