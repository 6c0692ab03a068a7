package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

// Repositorios de páginas legales y páginas estáticas. Misma forma,
// tablas distintas.

const pageFields = `id, slug, title, content, published, created_at, updated_at`

var pageColumns = []string{"slug", "title", "content", "published"}

type LegalPageRepository struct {
	DB *sql.DB
}

func NewLegalPageRepository(db *sql.DB) *LegalPageRepository {
	return &LegalPageRepository{DB: db}
}

func scanLegalPage(row rowScanner) (*entity.LegalPage, error) {
	var p entity.LegalPage
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *LegalPageRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.LegalPage, error) {
	query := `SELECT ` + pageFields + ` FROM legal_pages`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []entity.LegalPage{}
	for rows.Next() {
		p, err := scanLegalPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

func (r *LegalPageRepository) FindByID(ctx context.Context, id string) (*entity.LegalPage, error) {
	p, err := scanLegalPage(r.DB.QueryRowContext(ctx, `SELECT `+pageFields+` FROM legal_pages WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *LegalPageRepository) FindBySlug(ctx context.Context, slug string) (*entity.LegalPage, error) {
	p, err := scanLegalPage(r.DB.QueryRowContext(ctx, `SELECT `+pageFields+` FROM legal_pages WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *LegalPageRepository) Create(ctx context.Context, p *entity.LegalPage) error {
	query := `
		INSERT INTO legal_pages (id, slug, title, content, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.Slug, p.Title, p.Content, p.Published, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *LegalPageRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.LegalPage, error) {
	set, args := setClause(patch, pageColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE legal_pages SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+pageFields, set, len(args)+1)
	args = append(args, id)

	p, err := scanLegalPage(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *LegalPageRepository) Delete(ctx context.Context, id string) (*entity.LegalPage, error) {
	p, err := scanLegalPage(r.DB.QueryRowContext(ctx, `DELETE FROM legal_pages WHERE id = $1 RETURNING `+pageFields, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

type PageContentRepository struct {
	DB *sql.DB
}

func NewPageContentRepository(db *sql.DB) *PageContentRepository {
	return &PageContentRepository{DB: db}
}

func scanPageContent(row rowScanner) (*entity.PageContent, error) {
	var p entity.PageContent
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PageContentRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.PageContent, error) {
	query := `SELECT ` + pageFields + ` FROM page_contents`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []entity.PageContent{}
	for rows.Next() {
		p, err := scanPageContent(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *p)
	}
	return pages, rows.Err()
}

func (r *PageContentRepository) FindByID(ctx context.Context, id string) (*entity.PageContent, error) {
	p, err := scanPageContent(r.DB.QueryRowContext(ctx, `SELECT `+pageFields+` FROM page_contents WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *PageContentRepository) FindBySlug(ctx context.Context, slug string) (*entity.PageContent, error) {
	p, err := scanPageContent(r.DB.QueryRowContext(ctx, `SELECT `+pageFields+` FROM page_contents WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *PageContentRepository) Create(ctx context.Context, p *entity.PageContent) error {
	query := `
		INSERT INTO page_contents (id, slug, title, content, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, p.ID, p.Slug, p.Title, p.Content, p.Published, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PageContentRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.PageContent, error) {
	set, args := setClause(patch, pageColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE page_contents SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+pageFields, set, len(args)+1)
	args = append(args, id)

	p, err := scanPageContent(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}

func (r *PageContentRepository) Delete(ctx context.Context, id string) (*entity.PageContent, error) {
	p, err := scanPageContent(r.DB.QueryRowContext(ctx, `DELETE FROM page_contents WHERE id = $1 RETURNING `+pageFields, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return p, err
}
