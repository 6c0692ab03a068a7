package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const businessModelFields = `id, slug, name, tagline, description, features, advantages, benefits,
	image_url, icon_name, cta, cta_link, sort_order, published, created_at, updated_at`

// Orden fijo de columnas actualizables (ver setClause).
var businessModelColumns = []string{
	"slug", "name", "tagline", "description", "features", "advantages", "benefits",
	"image_url", "icon_name", "cta", "cta_link", "sort_order", "published",
}

type BusinessModelRepository struct {
	DB *sql.DB
}

func NewBusinessModelRepository(db *sql.DB) *BusinessModelRepository {
	return &BusinessModelRepository{DB: db}
}

func scanBusinessModel(row rowScanner) (*entity.BusinessModel, error) {
	var m entity.BusinessModel
	err := row.Scan(
		&m.ID, &m.Slug, &m.Name, &m.Tagline, &m.Description,
		(*stringList)(&m.Features), (*stringList)(&m.Advantages), (*stringList)(&m.Benefits),
		&m.ImageURL, &m.IconName, &m.CTA, &m.CTALink,
		&m.Order, &m.Published, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *BusinessModelRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.BusinessModel, error) {
	query := `SELECT ` + businessModelFields + ` FROM business_models`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	models := []entity.BusinessModel{}
	for rows.Next() {
		m, err := scanBusinessModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, *m)
	}
	return models, rows.Err()
}

func (r *BusinessModelRepository) FindByID(ctx context.Context, id string) (*entity.BusinessModel, error) {
	query := `SELECT ` + businessModelFields + ` FROM business_models WHERE id = $1`
	m, err := scanBusinessModel(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}

func (r *BusinessModelRepository) FindBySlug(ctx context.Context, slug string) (*entity.BusinessModel, error) {
	query := `SELECT ` + businessModelFields + ` FROM business_models WHERE slug = $1`
	m, err := scanBusinessModel(r.DB.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}

func (r *BusinessModelRepository) Create(ctx context.Context, m *entity.BusinessModel) error {
	query := `
		INSERT INTO business_models (id, slug, name, tagline, description, features, advantages, benefits,
			image_url, icon_name, cta, cta_link, sort_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.Slug, m.Name, m.Tagline, m.Description,
		stringList(m.Features), stringList(m.Advantages), stringList(m.Benefits),
		m.ImageURL, m.IconName, m.CTA, m.CTALink,
		m.Order, m.Published, m.CreatedAt, m.UpdatedAt,
	)
	return err
}

func (r *BusinessModelRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.BusinessModel, error) {
	set, args := setClause(patch, businessModelColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE business_models SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+businessModelFields, set, len(args)+1)
	args = append(args, id)

	m, err := scanBusinessModel(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}

// Delete devuelve el registro borrado como confirmación. Las referencias
// de programas, tarifas y leads quedan a NULL (lo garantiza el DDL).
func (r *BusinessModelRepository) Delete(ctx context.Context, id string) (*entity.BusinessModel, error) {
	query := `DELETE FROM business_models WHERE id = $1 RETURNING ` + businessModelFields
	m, err := scanBusinessModel(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return m, err
}
