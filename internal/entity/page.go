package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LegalPage es un texto legal (privacidad, cookies, términos) direccionado
// públicamente por slug. El contenido es HTML.
type LegalPage struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewLegalPage(slug, title, content string) *LegalPage {
	now := time.Now()
	return &LegalPage{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     title,
		Content:   content,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PageContent es contenido estático genérico ("Quiénes Somos"...), misma
// forma que LegalPage pero en tabla aparte.
type PageContent struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPageContent(slug, title, content string) *PageContent {
	now := time.Now()
	return &PageContent{
		ID:        uuid.New().String(),
		Slug:      slug,
		Title:     title,
		Content:   content,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type LegalPageRepository interface {
	List(ctx context.Context, vis Visibility) ([]LegalPage, error)
	FindByID(ctx context.Context, id string) (*LegalPage, error)
	FindBySlug(ctx context.Context, slug string) (*LegalPage, error)
	Create(ctx context.Context, p *LegalPage) error
	Update(ctx context.Context, id string, patch Patch) (*LegalPage, error)
	Delete(ctx context.Context, id string) (*LegalPage, error)
}

type PageContentRepository interface {
	List(ctx context.Context, vis Visibility) ([]PageContent, error)
	FindByID(ctx context.Context, id string) (*PageContent, error)
	FindBySlug(ctx context.Context, slug string) (*PageContent, error)
	Create(ctx context.Context, p *PageContent) error
	Update(ctx context.Context, id string, patch Patch) (*PageContent, error)
	Delete(ctx context.Context, id string) (*PageContent, error)
}
