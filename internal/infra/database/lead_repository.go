package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const leadFields = `id, type, status, name, email, phone, message, program_id,
	business_model_id, metadata, notes, created_at, updated_at`

var leadColumns = []string{
	"type", "status", "name", "email", "phone", "message",
	"program_id", "business_model_id", "metadata", "notes",
}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID, &l.Type, &l.Status, &l.Name, &l.Email, &l.Phone, &l.Message,
		&l.ProgramID, &l.BusinessModelID, (*jsonMap)(&l.Metadata), &l.Notes,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List filtra por estado y tipo si vienen, siempre los más nuevos primero.
func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	query := `SELECT ` + leadFields + ` FROM leads`
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadFields + ` FROM leads WHERE id = $1`
	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (id, type, status, name, email, phone, message, program_id,
			business_model_id, metadata, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.Type, l.Status, l.Name, l.Email, l.Phone, l.Message,
		l.ProgramID, l.BusinessModelID, jsonMap(l.Metadata), l.Notes,
		l.CreatedAt, l.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Lead, error) {
	set, args := setClause(patch, leadColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE leads SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+leadFields, set, len(args)+1)
	args = append(args, id)

	l, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (*entity.Lead, error) {
	query := `DELETE FROM leads WHERE id = $1 RETURNING ` + leadFields
	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return l, err
}
