package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Program es una disciplina concreta (Ballet Clásico, Street Flow...),
// opcionalmente colgada de un BusinessModel.
type Program struct {
	ID              string       `json:"id"`
	BusinessModelID *string      `json:"businessModelId"`
	Slug            string       `json:"slug"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Level           ProgramLevel `json:"level"`
	AgeGroup        AgeGroup     `json:"ageGroup"`
	WeeklyHours     *int         `json:"weeklyHours"`
	ImageURL        *string      `json:"imageUrl"`
	Published       bool         `json:"published"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func NewProgram(slug, name, description string, level ProgramLevel, ageGroup AgeGroup) *Program {
	now := time.Now()
	return &Program{
		ID:          uuid.New().String(),
		Slug:        slug,
		Name:        name,
		Description: description,
		Level:       level,
		AgeGroup:    ageGroup,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type ProgramRepository interface {
	List(ctx context.Context, vis Visibility) ([]Program, error)
	FindByID(ctx context.Context, id string) (*Program, error)
	FindBySlug(ctx context.Context, slug string) (*Program, error)
	Create(ctx context.Context, p *Program) error
	Update(ctx context.Context, id string, patch Patch) (*Program, error)
	// Delete arrastra en cascada los schedule_slots y los vínculos de
	// especialidad del programa (lo garantiza el DDL).
	Delete(ctx context.Context, id string) (*Program, error)
}
