package entity

import (
	"context"

	"github.com/google/uuid"
)

// ScheduleSlot es un bloque semanal recurrente del cuadrante horario.
// Horas en formato "HH:MM". Sin timestamps: el cuadrante se reescribe entero.
type ScheduleSlot struct {
	ID          string    `json:"id"`
	ProgramID   *string   `json:"programId"`
	DayOfWeek   DayOfWeek `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Room        *string   `json:"room"`
	MaxCapacity *int      `json:"maxCapacity"`
	Published   bool      `json:"published"`
}

// ScheduleSlotWithProgram añade el nombre del programa para el cuadrante público.
type ScheduleSlotWithProgram struct {
	ScheduleSlot
	ProgramName *string `json:"programName"`
}

func NewScheduleSlot(day DayOfWeek, startTime, endTime string) *ScheduleSlot {
	return &ScheduleSlot{
		ID:        uuid.New().String(),
		DayOfWeek: day,
		StartTime: startTime,
		EndTime:   endTime,
		Published: true,
	}
}

type ScheduleSlotRepository interface {
	// List público exige published=true en el slot Y en su programa:
	// un programa despublicado nunca filtra sus horarios al cuadrante.
	List(ctx context.Context, vis Visibility) ([]ScheduleSlotWithProgram, error)
	FindByID(ctx context.Context, id string) (*ScheduleSlot, error)
	Create(ctx context.Context, s *ScheduleSlot) error
	Update(ctx context.Context, id string, patch Patch) (*ScheduleSlot, error)
	Delete(ctx context.Context, id string) (*ScheduleSlot, error)
}
