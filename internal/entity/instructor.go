package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Instructor es un perfil del equipo docente.
type Instructor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Quote     *string   `json:"quote"`
	Bio       string    `json:"bio"`
	PhotoURL  *string   `json:"photoUrl"`
	Featured  bool      `json:"featured"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InstructorWithSpecialties añade los nombres de los programas que imparte,
// resueltos vía instructor_specialties.
type InstructorWithSpecialties struct {
	Instructor
	Specialties []string `json:"specialties"`
}

func NewInstructor(name, role, bio string) *Instructor {
	now := time.Now()
	return &Instructor{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      role,
		Bio:       bio,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type InstructorRepository interface {
	// List resuelve las especialidades en dos consultas en total,
	// nunca una por instructor.
	List(ctx context.Context, vis Visibility) ([]InstructorWithSpecialties, error)
	FindByID(ctx context.Context, id string) (*Instructor, error)
	Create(ctx context.Context, i *Instructor) error
	Update(ctx context.Context, id string, patch Patch) (*Instructor, error)
	Delete(ctx context.Context, id string) (*Instructor, error)
}
