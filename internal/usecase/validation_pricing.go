package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreatePricingTierInput struct {
	BusinessModelID *string  `json:"businessModelId"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	PriceAmount     *int     `json:"priceAmount"`
	PriceCurrency   *string  `json:"priceCurrency"`
	BillingPeriod   *string  `json:"billingPeriod"`
	Features        []string `json:"features"`
	Highlighted     *bool    `json:"highlighted"`
	Order           *int     `json:"order"`
	Published       *bool    `json:"published"`
}

func ValidateCreatePricingTier(in CreatePricingTierInput) (*entity.PricingTier, error) {
	var errs ValidationErrors
	requireText(&errs, "name", in.Name)
	if in.PriceAmount == nil {
		errs = append(errs, ValidationError{"priceAmount", "is required"})
	} else if *in.PriceAmount < 0 {
		errs = append(errs, ValidationError{"priceAmount", "must not be negative"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	t := entity.NewPricingTier(in.Name, *in.PriceAmount)
	t.BusinessModelID = in.BusinessModelID
	t.Description = in.Description
	if in.PriceCurrency != nil {
		t.PriceCurrency = *in.PriceCurrency
	}
	t.BillingPeriod = in.BillingPeriod
	t.Features = in.Features
	if in.Highlighted != nil {
		t.Highlighted = *in.Highlighted
	}
	if in.Order != nil {
		t.Order = *in.Order
	}
	if in.Published != nil {
		t.Published = *in.Published
	}
	return t, nil
}

type UpdatePricingTierInput struct {
	BusinessModelID *string   `json:"businessModelId"`
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	PriceAmount     *int      `json:"priceAmount"`
	PriceCurrency   *string   `json:"priceCurrency"`
	BillingPeriod   *string   `json:"billingPeriod"`
	Features        *[]string `json:"features"`
	Highlighted     *bool     `json:"highlighted"`
	Order           *int      `json:"order"`
	Published       *bool     `json:"published"`
}

func ValidateUpdatePricingTier(in UpdatePricingTierInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.BusinessModelID != nil {
		patch["business_model_id"] = *in.BusinessModelID
	}
	if in.Name != nil {
		requireText(&errs, "name", *in.Name)
		patch["name"] = *in.Name
	}
	if in.Description != nil {
		patch["description"] = *in.Description
	}
	if in.PriceAmount != nil {
		if *in.PriceAmount < 0 {
			errs = append(errs, ValidationError{"priceAmount", "must not be negative"})
		}
		patch["price_amount"] = *in.PriceAmount
	}
	if in.PriceCurrency != nil {
		requireText(&errs, "priceCurrency", *in.PriceCurrency)
		patch["price_currency"] = *in.PriceCurrency
	}
	if in.BillingPeriod != nil {
		patch["billing_period"] = *in.BillingPeriod
	}
	if in.Features != nil {
		patch["features"] = *in.Features
	}
	if in.Highlighted != nil {
		patch["highlighted"] = *in.Highlighted
	}
	if in.Order != nil {
		patch["sort_order"] = *in.Order
	}
	if in.Published != nil {
		patch["published"] = *in.Published
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(patch) == 0 {
		return nil, ErrEmptyUpdate
	}
	return patch, nil
}
