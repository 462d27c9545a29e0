package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/domain/schedule"
)

type PrescriptionsRepo struct {
	db *sql.DB
}

func NewPrescriptionsRepo(db *sql.DB) *PrescriptionsRepo {
	return &PrescriptionsRepo{db: db}
}

const prescriptionSelect = `
	SELECT
		id, stay_id,
		medication, dosage, frequency, route,
		start_date, end_date,
		active, deactivated_at,
		notes, created_at, updated_at
	FROM prescriptions
`

func (r *PrescriptionsRepo) Create(ctx context.Context, p hospitalizations.Prescription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO prescriptions (
			id, stay_id,
			medication, dosage, frequency, route,
			start_date, end_date,
			active, deactivated_at,
			notes, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.StayID,
		p.Medication,
		p.Dosage,
		ruleText(p.Frequency),
		p.Route,
		p.StartDate,
		nullTime(p.EndDate),
		p.Active,
		nullTime(p.DeactivatedAt),
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update solo toca los campos que cambian al discontinuar.
func (r *PrescriptionsRepo) Update(ctx context.Context, p hospitalizations.Prescription) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE prescriptions
		SET end_date = $2,
		    active = $3,
		    deactivated_at = $4,
		    notes = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		nullTime(p.EndDate),
		p.Active,
		nullTime(p.DeactivatedAt),
		p.Notes,
		p.UpdatedAt,
	)
	return expectOne(res, err)
}

func (r *PrescriptionsRepo) GetByID(ctx context.Context, id string) (hospitalizations.Prescription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return hospitalizations.Prescription{}, hospitalizations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, prescriptionSelect+` WHERE id = $1`, id)
	p, err := scanPrescription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hospitalizations.Prescription{}, hospitalizations.ErrNotFound
	}
	return p, err
}

func (r *PrescriptionsRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.Prescription, error) {
	rows, err := r.db.QueryContext(ctx, prescriptionSelect+` WHERE stay_id = $1 ORDER BY created_at ASC, id ASC`, stayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.Prescription, 0)
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPrescription(s rowScanner) (hospitalizations.Prescription, error) {
	var p hospitalizations.Prescription
	var freq string
	var endDate, deactivatedAt sql.NullTime
	if err := s.Scan(
		&p.ID,
		&p.StayID,
		&p.Medication,
		&p.Dosage,
		&freq,
		&p.Route,
		&p.StartDate,
		&endDate,
		&p.Active,
		&deactivatedAt,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return hospitalizations.Prescription{}, err
	}

	rule, err := schedule.ParseRule(freq)
	if err != nil {
		return hospitalizations.Prescription{}, fmt.Errorf("prescription %s: stored frequency %q: %w", p.ID, freq, err)
	}
	p.Frequency = rule
	p.EndDate = timePtr(endDate)
	p.DeactivatedAt = timePtr(deactivatedAt)
	return p, nil
}

func ruleText(r schedule.Rule) string {
	if r == nil {
		return ""
	}
	return r.String()
}
