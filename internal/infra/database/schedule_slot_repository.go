package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const scheduleSlotFields = `id, program_id, day_of_week, start_time, end_time, room, max_capacity, published`

var scheduleSlotColumns = []string{
	"program_id", "day_of_week", "start_time", "end_time", "room", "max_capacity", "published",
}

type ScheduleSlotRepository struct {
	DB *sql.DB
}

func NewScheduleSlotRepository(db *sql.DB) *ScheduleSlotRepository {
	return &ScheduleSlotRepository{DB: db}
}

func scanScheduleSlot(row rowScanner) (*entity.ScheduleSlot, error) {
	var s entity.ScheduleSlot
	err := row.Scan(
		&s.ID, &s.ProgramID, &s.DayOfWeek, &s.StartTime, &s.EndTime,
		&s.Room, &s.MaxCapacity, &s.Published,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List une con programs para traer el nombre. En público exige
// published=TRUE en el slot Y en el programa a la vez: los horarios de un
// programa despublicado no se filtran aunque el slot siga publicado.
func (r *ScheduleSlotRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.ScheduleSlotWithProgram, error) {
	query := `
		SELECT s.id, s.program_id, s.day_of_week, s.start_time, s.end_time,
			s.room, s.max_capacity, s.published, p.name
		FROM schedule_slots s
		LEFT JOIN programs p ON s.program_id = p.id
	`
	if vis == entity.VisibilityPublic {
		query += ` WHERE s.published = TRUE AND p.published = TRUE`
	}
	query += ` ORDER BY s.day_of_week, s.start_time`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []entity.ScheduleSlotWithProgram{}
	for rows.Next() {
		var s entity.ScheduleSlotWithProgram
		err := rows.Scan(
			&s.ID, &s.ProgramID, &s.DayOfWeek, &s.StartTime, &s.EndTime,
			&s.Room, &s.MaxCapacity, &s.Published, &s.ProgramName,
		)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *ScheduleSlotRepository) FindByID(ctx context.Context, id string) (*entity.ScheduleSlot, error) {
	query := `SELECT ` + scheduleSlotFields + ` FROM schedule_slots WHERE id = $1`
	s, err := scanScheduleSlot(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *ScheduleSlotRepository) Create(ctx context.Context, s *entity.ScheduleSlot) error {
	query := `
		INSERT INTO schedule_slots (id, program_id, day_of_week, start_time, end_time, room, max_capacity, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.ProgramID, s.DayOfWeek, s.StartTime, s.EndTime,
		s.Room, s.MaxCapacity, s.Published,
	)
	return err
}

// Sin updated_at: la tabla no tiene timestamps.
func (r *ScheduleSlotRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.ScheduleSlot, error) {
	set, args := setClause(patch, scheduleSlotColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE schedule_slots SET %s WHERE id = $%d RETURNING `+scheduleSlotFields, set, len(args)+1)
	args = append(args, id)

	s, err := scanScheduleSlot(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}

func (r *ScheduleSlotRepository) Delete(ctx context.Context, id string) (*entity.ScheduleSlot, error) {
	query := `DELETE FROM schedule_slots WHERE id = $1 RETURNING ` + scheduleSlotFields
	s, err := scanScheduleSlot(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return s, err
}
