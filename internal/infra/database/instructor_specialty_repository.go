package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

type InstructorSpecialtyRepository struct {
	DB *sql.DB
}

func NewInstructorSpecialtyRepository(db *sql.DB) *InstructorSpecialtyRepository {
	return &InstructorSpecialtyRepository{DB: db}
}

func (r *InstructorSpecialtyRepository) List(ctx context.Context, filter entity.InstructorSpecialtyFilter) ([]entity.InstructorSpecialty, error) {
	query := `SELECT id, instructor_id, program_id, is_primary FROM instructor_specialties`
	var conditions []string
	var args []any

	if filter.InstructorID != "" {
		args = append(args, filter.InstructorID)
		conditions = append(conditions, fmt.Sprintf("instructor_id = $%d", len(args)))
	}
	if filter.ProgramID != "" {
		args = append(args, filter.ProgramID)
		conditions = append(conditions, fmt.Sprintf("program_id = $%d", len(args)))
	}
	for i, c := range conditions {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	specialties := []entity.InstructorSpecialty{}
	for rows.Next() {
		var s entity.InstructorSpecialty
		if err := rows.Scan(&s.ID, &s.InstructorID, &s.ProgramID, &s.IsPrimary); err != nil {
			return nil, err
		}
		specialties = append(specialties, s)
	}
	return specialties, rows.Err()
}

func (r *InstructorSpecialtyRepository) Create(ctx context.Context, s *entity.InstructorSpecialty) error {
	query := `
		INSERT INTO instructor_specialties (id, instructor_id, program_id, is_primary)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.InstructorID, s.ProgramID, s.IsPrimary)
	return err
}

func (r *InstructorSpecialtyRepository) Delete(ctx context.Context, id string) (*entity.InstructorSpecialty, error) {
	query := `DELETE FROM instructor_specialties WHERE id = $1 RETURNING id, instructor_id, program_id, is_primary`
	var s entity.InstructorSpecialty
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.InstructorID, &s.ProgramID, &s.IsPrimary)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
