package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const instructorFields = `id, name, role, quote, bio, photo_url, featured, sort_order,
	published, created_at, updated_at`

var instructorColumns = []string{
	"name", "role", "quote", "bio", "photo_url", "featured", "sort_order", "published",
}

type InstructorRepository struct {
	DB *sql.DB
}

func NewInstructorRepository(db *sql.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

func scanInstructor(row rowScanner) (*entity.Instructor, error) {
	var i entity.Instructor
	err := row.Scan(
		&i.ID, &i.Name, &i.Role, &i.Quote, &i.Bio, &i.PhotoURL,
		&i.Featured, &i.Order, &i.Published, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// List hace la lectura en dos pasos: primero los instructores, después
// TODAS sus especialidades en una sola consulta con join a programs, y se
// agrupan en memoria. Nunca una consulta por instructor.
func (r *InstructorRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.InstructorWithSpecialties, error) {
	query := `SELECT ` + instructorFields + ` FROM instructors`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instructors := []entity.InstructorWithSpecialties{}
	ids := []string{}
	for rows.Next() {
		i, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, entity.InstructorWithSpecialties{
			Instructor:  *i,
			Specialties: []string{},
		})
		ids = append(ids, i.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(instructors) == 0 {
		return instructors, nil
	}

	// Segundo paso: especialidades de todos los instructores de golpe.
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	specQuery := fmt.Sprintf(`
		SELECT s.instructor_id, p.name
		FROM instructor_specialties s
		INNER JOIN programs p ON s.program_id = p.id
		WHERE s.instructor_id IN (%s)
	`, strings.Join(placeholders, ", "))

	specRows, err := r.DB.QueryContext(ctx, specQuery, args...)
	if err != nil {
		return nil, err
	}
	defer specRows.Close()

	byInstructor := map[string][]string{}
	for specRows.Next() {
		var instructorID, programName string
		if err := specRows.Scan(&instructorID, &programName); err != nil {
			return nil, err
		}
		byInstructor[instructorID] = append(byInstructor[instructorID], programName)
	}
	if err := specRows.Err(); err != nil {
		return nil, err
	}

	for i := range instructors {
		if names, ok := byInstructor[instructors[i].ID]; ok {
			instructors[i].Specialties = names
		}
	}
	return instructors, nil
}

func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*entity.Instructor, error) {
	query := `SELECT ` + instructorFields + ` FROM instructors WHERE id = $1`
	i, err := scanInstructor(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return i, err
}

func (r *InstructorRepository) Create(ctx context.Context, i *entity.Instructor) error {
	query := `
		INSERT INTO instructors (id, name, role, quote, bio, photo_url, featured, sort_order,
			published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		i.ID, i.Name, i.Role, i.Quote, i.Bio, i.PhotoURL,
		i.Featured, i.Order, i.Published, i.CreatedAt, i.UpdatedAt,
	)
	return err
}

func (r *InstructorRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Instructor, error) {
	set, args := setClause(patch, instructorColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE instructors SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+instructorFields, set, len(args)+1)
	args = append(args, id)

	i, err := scanInstructor(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return i, err
}

// Delete arrastra los vínculos de instructor_specialties (cascada en DDL).
func (r *InstructorRepository) Delete(ctx context.Context, id string) (*entity.Instructor, error) {
	query := `DELETE FROM instructors WHERE id = $1 RETURNING ` + instructorFields
	i, err := scanInstructor(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return i, err
}
