package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-hospitalization/internal/domain/hospitalizations"
)

type AdministrationsRepo struct {
	db *sql.DB
}

func NewAdministrationsRepo(db *sql.DB) *AdministrationsRepo {
	return &AdministrationsRepo{db: db}
}

const administrationSelect = `
	SELECT
		id, stay_id, prescription_id,
		scheduled_at, completed_at, skipped_at,
		actor, notes,
		created_at, updated_at
	FROM administrations
`

// CreateBatch inserta en una transacción; (prescription_id, scheduled_at) es único
// y los duplicados se ignoran.
func (r *AdministrationsRepo) CreateBatch(ctx context.Context, items []hospitalizations.Administration) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO administrations (
			id, stay_id, prescription_id,
			scheduled_at, completed_at, skipped_at,
			actor, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (prescription_id, scheduled_at) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range items {
		if _, err := stmt.ExecContext(ctx,
			a.ID,
			a.StayID,
			a.PrescriptionID,
			a.ScheduledAt,
			nullTime(a.CompletedAt),
			nullTime(a.SkippedAt),
			a.Actor,
			a.Notes,
			a.CreatedAt,
			a.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert administration %s: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

func (r *AdministrationsRepo) Update(ctx context.Context, a hospitalizations.Administration) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE administrations
		SET completed_at = $2,
		    skipped_at = $3,
		    actor = $4,
		    notes = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		a.ID,
		nullTime(a.CompletedAt),
		nullTime(a.SkippedAt),
		a.Actor,
		a.Notes,
		a.UpdatedAt,
	)
	return expectOne(res, err)
}

func (r *AdministrationsRepo) GetByID(ctx context.Context, id string) (hospitalizations.Administration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return hospitalizations.Administration{}, hospitalizations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, administrationSelect+` WHERE id = $1`, id)
	a, err := scanAdministration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hospitalizations.Administration{}, hospitalizations.ErrNotFound
	}
	return a, err
}

func (r *AdministrationsRepo) ListByPrescription(ctx context.Context, prescriptionID string) ([]hospitalizations.Administration, error) {
	return r.list(ctx, `WHERE prescription_id = $1`, prescriptionID)
}

func (r *AdministrationsRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.Administration, error) {
	return r.list(ctx, `WHERE stay_id = $1`, stayID)
}

func (r *AdministrationsRepo) list(ctx context.Context, where string, arg string) ([]hospitalizations.Administration, error) {
	rows, err := r.db.QueryContext(ctx, administrationSelect+where+` ORDER BY scheduled_at ASC, id ASC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.Administration, 0)
	for rows.Next() {
		a, err := scanAdministration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAdministration(s rowScanner) (hospitalizations.Administration, error) {
	var a hospitalizations.Administration
	var completedAt, skippedAt sql.NullTime
	if err := s.Scan(
		&a.ID,
		&a.StayID,
		&a.PrescriptionID,
		&a.ScheduledAt,
		&completedAt,
		&skippedAt,
		&a.Actor,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return hospitalizations.Administration{}, err
	}
	a.CompletedAt = timePtr(completedAt)
	a.SkippedAt = timePtr(skippedAt)
	return a, nil
}
