package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead es una consulta entrante del formulario público (contacto,
// preinscripción, reserva élite o boda). El estado es una clasificación
// libre: el CMS puede pasar de cualquier estado a cualquier otro,
// incluido reabrir un lead cerrado.
type Lead struct {
	ID              string         `json:"id"`
	Type            LeadType       `json:"type"`
	Status          LeadStatus     `json:"status"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           *string        `json:"phone"`
	Message         *string        `json:"message"`
	ProgramID       *string        `json:"programId"`
	BusinessModelID *string        `json:"businessModelId"`
	Metadata        map[string]any `json:"metadata"`
	Notes           *string        `json:"notes"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func NewLead(leadType LeadType, name, email string) *Lead {
	now := time.Now()
	return &Lead{
		ID:        uuid.New().String(),
		Type:      leadType,
		Status:    LeadStatusNew,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type LeadFilter struct {
	Status LeadStatus
	Type   LeadType
}

type LeadRepository interface {
	// List ordena siempre por created_at descendente (los nuevos primero).
	List(ctx context.Context, filter LeadFilter) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	Create(ctx context.Context, l *Lead) error
	Update(ctx context.Context, id string, patch Patch) (*Lead, error)
	Delete(ctx context.Context, id string) (*Lead, error)
}
