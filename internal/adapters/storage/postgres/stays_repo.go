package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-hospitalization/internal/domain/hospitalizations"
)

// NewHospitalizationRepos arma los repos del aggregate sobre el mismo pool.
func NewHospitalizationRepos(db *sql.DB) hospitalizations.Repositories {
	return hospitalizations.Repositories{
		Stays:           NewStaysRepo(db),
		Prescriptions:   NewPrescriptionsRepo(db),
		Administrations: NewAdministrationsRepo(db),
		Checklist:       NewChecklistRepo(db),
	}
}

type StaysRepo struct {
	db *sql.DB
}

func NewStaysRepo(db *sql.DB) *StaysRepo {
	return &StaysRepo{db: db}
}

const staySelect = `
	SELECT
		id, pet_id, client_id, clinician_id,
		status, admitted_at, closed_at,
		box_id, reason, notes,
		created_at, updated_at
	FROM hospitalizations
`

func (r *StaysRepo) Create(ctx context.Context, h hospitalizations.Hospitalization) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO hospitalizations (
			id, pet_id, client_id, clinician_id,
			status, admitted_at, closed_at,
			box_id, reason, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		h.ID,
		h.PetID,
		h.ClientID,
		h.ClinicianID,
		string(h.Status),
		h.AdmittedAt,
		nullTime(h.ClosedAt),
		nullString(h.BoxID),
		h.Reason,
		h.Notes,
		h.CreatedAt,
		h.UpdatedAt,
	)
	return err
}

func (r *StaysRepo) Update(ctx context.Context, h hospitalizations.Hospitalization) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE hospitalizations
		SET clinician_id = $2,
		    status = $3,
		    closed_at = $4,
		    box_id = $5,
		    notes = $6,
		    updated_at = $7
		WHERE id = $1
	`,
		h.ID,
		h.ClinicianID,
		string(h.Status),
		nullTime(h.ClosedAt),
		nullString(h.BoxID),
		h.Notes,
		h.UpdatedAt,
	)
	return expectOne(res, err)
}

func (r *StaysRepo) GetByID(ctx context.Context, id string) (hospitalizations.Hospitalization, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return hospitalizations.Hospitalization{}, hospitalizations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, staySelect+` WHERE id = $1`, id)
	h, err := scanStay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hospitalizations.Hospitalization{}, hospitalizations.ErrNotFound
	}
	return h, err
}

func (r *StaysRepo) List(ctx context.Context, filter hospitalizations.StayFilter) ([]hospitalizations.Hospitalization, error) {
	sb := strings.Builder{}
	sb.WriteString(staySelect)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	argN := 1

	if filter.Status != "" {
		sb.WriteString(fmt.Sprintf(" AND status = $%d", argN))
		args = append(args, string(filter.Status))
		argN++
	}
	if filter.PetID != "" {
		sb.WriteString(fmt.Sprintf(" AND pet_id = $%d", argN))
		args = append(args, filter.PetID)
		argN++
	}
	if filter.BoxID != "" {
		sb.WriteString(fmt.Sprintf(" AND box_id = $%d", argN))
		args = append(args, filter.BoxID)
		argN++
	}

	sb.WriteString(" ORDER BY admitted_at DESC, id ASC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.Hospitalization, 0)
	for rows.Next() {
		h, err := scanStay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanStay(s rowScanner) (hospitalizations.Hospitalization, error) {
	var h hospitalizations.Hospitalization
	var status string
	var closedAt sql.NullTime
	var boxID sql.NullString
	if err := s.Scan(
		&h.ID,
		&h.PetID,
		&h.ClientID,
		&h.ClinicianID,
		&status,
		&h.AdmittedAt,
		&closedAt,
		&boxID,
		&h.Reason,
		&h.Notes,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return hospitalizations.Hospitalization{}, err
	}
	h.Status = hospitalizations.StayStatus(status)
	h.ClosedAt = timePtr(closedAt)
	h.BoxID = boxID.String
	return h, nil
}

// expectOne traduce "0 filas afectadas" a ErrNotFound.
func expectOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return hospitalizations.ErrNotFound
	}
	return nil
}
