package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BusinessModel es uno de los pilares de negocio de la academia
// (Élite On Demand, Ritmo Constante, Generación Dance, Sí Quiero Bailar).
type BusinessModel struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Tagline     *string   `json:"tagline"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Advantages  []string  `json:"advantages"`
	Benefits    []string  `json:"benefits"`
	ImageURL    *string   `json:"imageUrl"`
	IconName    *string   `json:"iconName"`
	CTA         *string   `json:"cta"`
	CTALink     *string   `json:"ctaLink"`
	Order       int       `json:"order"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Factory: el id se genera aquí, no en la base de datos.
func NewBusinessModel(slug, name, description string) *BusinessModel {
	now := time.Now()
	return &BusinessModel{
		ID:          uuid.New().String(),
		Slug:        slug,
		Name:        name,
		Description: description,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type BusinessModelRepository interface {
	List(ctx context.Context, vis Visibility) ([]BusinessModel, error)
	FindByID(ctx context.Context, id string) (*BusinessModel, error)
	FindBySlug(ctx context.Context, slug string) (*BusinessModel, error)
	Create(ctx context.Context, m *BusinessModel) error
	Update(ctx context.Context, id string, patch Patch) (*BusinessModel, error)
	Delete(ctx context.Context, id string) (*BusinessModel, error)
}
