package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-hospitalization/internal/domain/hospitalizations"
)

type ChecklistRepo struct {
	db *sql.DB
}

func NewChecklistRepo(db *sql.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

const checklistSelect = `
	SELECT
		id, stay_id, prescription_id,
		title, scheduled_at, completed_at, skipped_at,
		actor, notes,
		created_at, updated_at
	FROM checklist_items
`

func (r *ChecklistRepo) Create(ctx context.Context, c hospitalizations.ChecklistItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO checklist_items (
			id, stay_id, prescription_id,
			title, scheduled_at, completed_at, skipped_at,
			actor, notes,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		c.ID,
		c.StayID,
		c.PrescriptionID,
		c.Title,
		c.ScheduledAt,
		nullTime(c.CompletedAt),
		nullTime(c.SkippedAt),
		c.Actor,
		c.Notes,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ChecklistRepo) Update(ctx context.Context, c hospitalizations.ChecklistItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE checklist_items
		SET completed_at = $2,
		    skipped_at = $3,
		    actor = $4,
		    notes = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		nullTime(c.CompletedAt),
		nullTime(c.SkippedAt),
		c.Actor,
		c.Notes,
		c.UpdatedAt,
	)
	return expectOne(res, err)
}

func (r *ChecklistRepo) GetByID(ctx context.Context, id string) (hospitalizations.ChecklistItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return hospitalizations.ChecklistItem{}, hospitalizations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, checklistSelect+` WHERE id = $1`, id)
	c, err := scanChecklistItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return hospitalizations.ChecklistItem{}, hospitalizations.ErrNotFound
	}
	return c, err
}

func (r *ChecklistRepo) ListByStay(ctx context.Context, stayID string) ([]hospitalizations.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx, checklistSelect+` WHERE stay_id = $1 ORDER BY scheduled_at ASC, id ASC`, stayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]hospitalizations.ChecklistItem, 0)
	for rows.Next() {
		c, err := scanChecklistItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanChecklistItem(s rowScanner) (hospitalizations.ChecklistItem, error) {
	var c hospitalizations.ChecklistItem
	var completedAt, skippedAt sql.NullTime
	if err := s.Scan(
		&c.ID,
		&c.StayID,
		&c.PrescriptionID,
		&c.Title,
		&c.ScheduledAt,
		&completedAt,
		&skippedAt,
		&c.Actor,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return hospitalizations.ChecklistItem{}, err
	}
	c.CompletedAt = timePtr(completedAt)
	c.SkippedAt = timePtr(skippedAt)
	return c, nil
}
