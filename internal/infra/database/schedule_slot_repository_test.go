package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

func scheduleRows() *sqlmock.Rows {
	programID := "prog-1"
	return sqlmock.NewRows([]string{
		"id", "program_id", "day_of_week", "start_time", "end_time",
		"room", "max_capacity", "published", "name",
	}).AddRow("slot-1", programID, "monday", "17:00", "18:30", "Sala A", 14, true, "Ballet Infantil")
}

// El cuadrante público filtra por published del slot Y del programa a la
// vez: despublicar el programa basta para ocultar todos sus horarios.
func TestScheduleSlotListPublicRequiresBothPublished(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`s\.published = TRUE AND p\.published = TRUE`).
		WillReturnRows(scheduleRows())

	slots, err := NewScheduleSlotRepository(db).List(context.Background(), entity.VisibilityPublic)

	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.Equal(t, "Ballet Infantil", *slots[0].ProgramName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Con visibilidad total no hay WHERE: el join va directo al ORDER BY.
func TestScheduleSlotListAllHasNoPublishedFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`LEFT JOIN programs p ON s\.program_id = p\.id\s+ORDER BY s\.day_of_week, s\.start_time`).
		WillReturnRows(scheduleRows())

	slots, err := NewScheduleSlotRepository(db).List(context.Background(), entity.VisibilityAll)

	assert.NoError(t, err)
	assert.Len(t, slots, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
