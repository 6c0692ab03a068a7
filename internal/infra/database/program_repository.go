package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const programFields = `id, business_model_id, slug, name, description, level, age_group,
	weekly_hours, image_url, published, created_at, updated_at`

var programColumns = []string{
	"business_model_id", "slug", "name", "description", "level", "age_group",
	"weekly_hours", "image_url", "published",
}

type ProgramRepository struct {
	DB *sql.DB
}

func NewProgramRepository(db *sql.DB) *ProgramRepository {
	return &ProgramRepository{DB: db}
}

func scanProgram(row rowScanner) (*entity.Program, error) {
	var p entity.Program
	err := row.Scan(
		&p.ID, &p.BusinessModelID, &p.Slug, &p.Name, &p.Description,
		&p.Level, &p.AgeGroup, &p.WeeklyHours, &p.ImageURL,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProgramRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.Program, error) {
	query := `SELECT ` + programFields + ` FROM programs`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []entity.Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, *p)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*entity.Program, error) {
	query := `SELECT ` + programFields + ` FROM programs WHERE id = $1`
	p, err := scanProgram(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProgramRepository) FindBySlug(ctx context.Context, slug string) (*entity.Program, error) {
	query := `SELECT ` + programFields + ` FROM programs WHERE slug = $1`
	p, err := scanProgram(r.DB.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *ProgramRepository) Create(ctx context.Context, p *entity.Program) error {
	query := `
		INSERT INTO programs (id, business_model_id, slug, name, description, level, age_group,
			weekly_hours, image_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.BusinessModelID, p.Slug, p.Name, p.Description,
		p.Level, p.AgeGroup, p.WeeklyHours, p.ImageURL,
		p.Published, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *ProgramRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Program, error) {
	set, args := setClause(patch, programColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE programs SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+programFields, set, len(args)+1)
	args = append(args, id)

	p, err := scanProgram(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

// Delete arrastra schedule_slots e instructor_specialties (cascada en DDL).
func (r *ProgramRepository) Delete(ctx context.Context, id string) (*entity.Program, error) {
	query := `DELETE FROM programs WHERE id = $1 RETURNING ` + programFields
	p, err := scanProgram(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}
