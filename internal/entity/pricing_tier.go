package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PricingTier es una tarifa dentro de un pilar de negocio.
// PriceAmount va en unidades enteras; la moneda por defecto es EUR.
type PricingTier struct {
	ID              string    `json:"id"`
	BusinessModelID *string   `json:"businessModelId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	PriceAmount     int       `json:"priceAmount"`
	PriceCurrency   string    `json:"priceCurrency"`
	BillingPeriod   *string   `json:"billingPeriod"`
	Features        []string  `json:"features"`
	Highlighted     bool      `json:"highlighted"`
	Order           int       `json:"order"`
	Published       bool      `json:"published"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewPricingTier(name string, priceAmount int) *PricingTier {
	now := time.Now()
	return &PricingTier{
		ID:            uuid.New().String(),
		Name:          name,
		PriceAmount:   priceAmount,
		PriceCurrency: "EUR",
		Published:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type PricingTierRepository interface {
	List(ctx context.Context, vis Visibility) ([]PricingTier, error)
	FindByID(ctx context.Context, id string) (*PricingTier, error)
	Create(ctx context.Context, t *PricingTier) error
	Update(ctx context.Context, id string, patch Patch) (*PricingTier, error)
	Delete(ctx context.Context, id string) (*PricingTier, error)
}
