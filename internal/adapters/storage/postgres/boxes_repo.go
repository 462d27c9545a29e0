package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"pet-hospitalization/internal/domain/boxes"
)

type BoxesRepo struct {
	db *sql.DB
}

func NewBoxesRepo(db *sql.DB) *BoxesRepo {
	return &BoxesRepo{db: db}
}

func (r *BoxesRepo) Create(ctx context.Context, b boxes.Box) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO boxes (id, name, description, active, occupant_stay_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		b.ID,
		b.Name,
		b.Description,
		b.Active,
		occupant(b.OccupantStayID),
		b.CreatedAt,
		b.UpdatedAt,
	)
	return err
}

func (r *BoxesRepo) GetByID(ctx context.Context, id string) (boxes.Box, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return boxes.Box{}, boxes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, active, occupant_stay_id, created_at, updated_at
		FROM boxes
		WHERE id = $1
	`, id)

	b, err := scanBox(row)
	if errors.Is(err, sql.ErrNoRows) {
		return boxes.Box{}, boxes.ErrNotFound
	}
	return b, err
}

func (r *BoxesRepo) List(ctx context.Context, filter boxes.ListFilter) ([]boxes.Box, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, name, description, active, occupant_stay_id, created_at, updated_at
		FROM boxes
		WHERE 1=1
	`)
	if filter.ActiveOnly {
		sb.WriteString(" AND active")
	}
	if filter.FreeOnly {
		sb.WriteString(" AND occupant_stay_id IS NULL")
	}
	sb.WriteString(" ORDER BY name ASC")

	rows, err := r.db.QueryContext(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]boxes.Box, 0)
	for rows.Next() {
		b, err := scanBox(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Claim es un UPDATE condicional: la fila solo cambia si el box está activo y libre
// (o ya es de stayID). Si no cambia nada se consulta el motivo.
func (r *BoxesRepo) Claim(ctx context.Context, boxID, stayID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE boxes
		SET occupant_stay_id = $2, updated_at = $3
		WHERE id = $1
		  AND active
		  AND (occupant_stay_id IS NULL OR occupant_stay_id = $2)
	`, boxID, stayID, at)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 1 {
		return nil
	}

	b, err := r.GetByID(ctx, boxID)
	if err != nil {
		return err
	}
	if !b.Active {
		return boxes.ErrInactive
	}
	return boxes.ErrOccupied
}

func (r *BoxesRepo) Release(ctx context.Context, boxID, stayID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE boxes
		SET occupant_stay_id = NULL, updated_at = $3
		WHERE id = $1 AND occupant_stay_id = $2
	`, boxID, stayID, at)
	return err
}

func (r *BoxesRepo) Deactivate(ctx context.Context, boxID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE boxes
		SET active = FALSE, updated_at = $2
		WHERE id = $1 AND occupant_stay_id IS NULL
	`, boxID, at)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 1 {
		return nil
	}

	if _, err := r.GetByID(ctx, boxID); err != nil {
		return err
	}
	return boxes.ErrOccupied
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBox(s rowScanner) (boxes.Box, error) {
	var b boxes.Box
	var occ sql.NullString
	if err := s.Scan(&b.ID, &b.Name, &b.Description, &b.Active, &occ, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return boxes.Box{}, err
	}
	if occ.Valid {
		v := occ.String
		b.OccupantStayID = &v
	}
	return b, nil
}

func occupant(id *string) sql.NullString {
	if id == nil {
		return sql.NullString{}
	}
	return nullString(*id)
}
