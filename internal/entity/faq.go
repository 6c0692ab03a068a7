package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Faq es una pregunta frecuente etiquetada por categoría.
type Faq struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     int       `json:"order"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewFaq(category, question, answer string) *Faq {
	now := time.Now()
	return &Faq{
		ID:        uuid.New().String(),
		Category:  category,
		Question:  question,
		Answer:    answer,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type FaqRepository interface {
	List(ctx context.Context, vis Visibility) ([]Faq, error)
	FindByID(ctx context.Context, id string) (*Faq, error)
	Create(ctx context.Context, f *Faq) error
	Update(ctx context.Context, id string, patch Patch) (*Faq, error)
	Delete(ctx context.Context, id string) (*Faq, error)
}
