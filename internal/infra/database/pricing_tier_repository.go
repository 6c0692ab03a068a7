package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const pricingTierFields = `id, business_model_id, name, description, price_amount, price_currency,
	billing_period, features, highlighted, sort_order, published, created_at, updated_at`

var pricingTierColumns = []string{
	"business_model_id", "name", "description", "price_amount", "price_currency",
	"billing_period", "features", "highlighted", "sort_order", "published",
}

type PricingTierRepository struct {
	DB *sql.DB
}

func NewPricingTierRepository(db *sql.DB) *PricingTierRepository {
	return &PricingTierRepository{DB: db}
}

func scanPricingTier(row rowScanner) (*entity.PricingTier, error) {
	var t entity.PricingTier
	err := row.Scan(
		&t.ID, &t.BusinessModelID, &t.Name, &t.Description,
		&t.PriceAmount, &t.PriceCurrency, &t.BillingPeriod,
		(*stringList)(&t.Features), &t.Highlighted, &t.Order,
		&t.Published, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PricingTierRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.PricingTier, error) {
	query := `SELECT ` + pricingTierFields + ` FROM pricing_tiers`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := []entity.PricingTier{}
	for rows.Next() {
		t, err := scanPricingTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, *t)
	}
	return tiers, rows.Err()
}

func (r *PricingTierRepository) FindByID(ctx context.Context, id string) (*entity.PricingTier, error) {
	query := `SELECT ` + pricingTierFields + ` FROM pricing_tiers WHERE id = $1`
	t, err := scanPricingTier(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}

func (r *PricingTierRepository) Create(ctx context.Context, t *entity.PricingTier) error {
	query := `
		INSERT INTO pricing_tiers (id, business_model_id, name, description, price_amount, price_currency,
			billing_period, features, highlighted, sort_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.BusinessModelID, t.Name, t.Description,
		t.PriceAmount, t.PriceCurrency, t.BillingPeriod,
		stringList(t.Features), t.Highlighted, t.Order,
		t.Published, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *PricingTierRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.PricingTier, error) {
	set, args := setClause(patch, pricingTierColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE pricing_tiers SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+pricingTierFields, set, len(args)+1)
	args = append(args, id)

	t, err := scanPricingTier(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}

func (r *PricingTierRepository) Delete(ctx context.Context, id string) (*entity.PricingTier, error) {
	query := `DELETE FROM pricing_tiers WHERE id = $1 RETURNING ` + pricingTierFields
	t, err := scanPricingTier(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return t, err
}
