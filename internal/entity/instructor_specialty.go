package entity

import (
	"context"

	"github.com/google/uuid"
)

// InstructorSpecialty vincula un instructor con un programa (relación M:N).
// Se borra en cascada al eliminar cualquiera de los dos padres.
type InstructorSpecialty struct {
	ID           string `json:"id"`
	InstructorID string `json:"instructorId"`
	ProgramID    string `json:"programId"`
	IsPrimary    bool   `json:"isPrimary"`
}

func NewInstructorSpecialty(instructorID, programID string, isPrimary bool) *InstructorSpecialty {
	return &InstructorSpecialty{
		ID:           uuid.New().String(),
		InstructorID: instructorID,
		ProgramID:    programID,
		IsPrimary:    isPrimary,
	}
}

type InstructorSpecialtyFilter struct {
	InstructorID string
	ProgramID    string
}

type InstructorSpecialtyRepository interface {
	List(ctx context.Context, filter InstructorSpecialtyFilter) ([]InstructorSpecialty, error)
	Create(ctx context.Context, s *InstructorSpecialty) error
	Delete(ctx context.Context, id string) (*InstructorSpecialty, error)
}
