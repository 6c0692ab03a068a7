package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreateBusinessModelInput struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Tagline     *string  `json:"tagline"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Advantages  []string `json:"advantages"`
	Benefits    []string `json:"benefits"`
	ImageURL    *string  `json:"imageUrl"`
	IconName    *string  `json:"iconName"`
	CTA         *string  `json:"cta"`
	CTALink     *string  `json:"ctaLink"`
	Order       *int     `json:"order"`
	Published   *bool    `json:"published"`
}

// ValidateCreateBusinessModel construye la entidad con defaults aplicados
// (published=true, order=0). Las tres listas deben traer al menos una
// entrada: un pilar sin features/ventajas/beneficios no se puede publicar.
func ValidateCreateBusinessModel(in CreateBusinessModelInput) (*entity.BusinessModel, error) {
	var errs ValidationErrors
	requireText(&errs, "slug", in.Slug)
	requireText(&errs, "name", in.Name)
	requireText(&errs, "description", in.Description)
	requireItems(&errs, "features", in.Features)
	requireItems(&errs, "advantages", in.Advantages)
	requireItems(&errs, "benefits", in.Benefits)
	if len(errs) > 0 {
		return nil, errs
	}

	m := entity.NewBusinessModel(in.Slug, in.Name, in.Description)
	m.Tagline = in.Tagline
	m.Features = in.Features
	m.Advantages = in.Advantages
	m.Benefits = in.Benefits
	m.ImageURL = in.ImageURL
	m.IconName = in.IconName
	m.CTA = in.CTA
	m.CTALink = in.CTALink
	if in.Order != nil {
		m.Order = *in.Order
	}
	if in.Published != nil {
		m.Published = *in.Published
	}
	return m, nil
}

type UpdateBusinessModelInput struct {
	Slug        *string   `json:"slug"`
	Name        *string   `json:"name"`
	Tagline     *string   `json:"tagline"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Advantages  *[]string `json:"advantages"`
	Benefits    *[]string `json:"benefits"`
	ImageURL    *string   `json:"imageUrl"`
	IconName    *string   `json:"iconName"`
	CTA         *string   `json:"cta"`
	CTALink     *string   `json:"ctaLink"`
	Order       *int      `json:"order"`
	Published   *bool     `json:"published"`
}

// ValidateUpdateBusinessModel valida solo los campos presentes y devuelve
// el patch de columnas. Un patch vacío es ErrEmptyUpdate.
func ValidateUpdateBusinessModel(in UpdateBusinessModelInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.Slug != nil {
		requireText(&errs, "slug", *in.Slug)
		patch["slug"] = *in.Slug
	}
	if in.Name != nil {
		requireText(&errs, "name", *in.Name)
		patch["name"] = *in.Name
	}
	if in.Tagline != nil {
		patch["tagline"] = *in.Tagline
	}
	if in.Description != nil {
		requireText(&errs, "description", *in.Description)
		patch["description"] = *in.Description
	}
	if in.Features != nil {
		requireItems(&errs, "features", *in.Features)
		patch["features"] = *in.Features
	}
	if in.Advantages != nil {
		requireItems(&errs, "advantages", *in.Advantages)
		patch["advantages"] = *in.Advantages
	}
	if in.Benefits != nil {
		requireItems(&errs, "benefits", *in.Benefits)
		patch["benefits"] = *in.Benefits
	}
	if in.ImageURL != nil {
		patch["image_url"] = *in.ImageURL
	}
	if in.IconName != nil {
		patch["icon_name"] = *in.IconName
	}
	if in.CTA != nil {
		patch["cta"] = *in.CTA
	}
	if in.CTALink != nil {
		patch["cta_link"] = *in.CTALink
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
