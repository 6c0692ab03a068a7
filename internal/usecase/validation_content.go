package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

// Validadores de contenido editorial: FAQs, páginas legales y páginas
// estáticas. Las tres comparten la misma mecánica create/patch.

type CreateFaqInput struct {
	Category  string `json:"category"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Order     *int   `json:"order"`
	Published *bool  `json:"published"`
}

func ValidateCreateFaq(in CreateFaqInput) (*entity.Faq, error) {
	var errs ValidationErrors
	requireText(&errs, "category", in.Category)
	requireText(&errs, "question", in.Question)
	requireText(&errs, "answer", in.Answer)
	if len(errs) > 0 {
		return nil, errs
	}

	f := entity.NewFaq(in.Category, in.Question, in.Answer)
	if in.Order != nil {
		f.Order = *in.Order
	}
	if in.Published != nil {
		f.Published = *in.Published
	}
	return f, nil
}

type UpdateFaqInput struct {
	Category  *string `json:"category"`
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateFaq(in UpdateFaqInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.Category != nil {
		requireText(&errs, "category", *in.Category)
		patch["category"] = *in.Category
	}
	if in.Question != nil {
		requireText(&errs, "question", *in.Question)
		patch["question"] = *in.Question
	}
	if in.Answer != nil {
		requireText(&errs, "answer", *in.Answer)
		patch["answer"] = *in.Answer
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

// Entrada compartida por LegalPage y PageContent (misma forma).
type CreatePageInput struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

func ValidateCreateLegalPage(in CreatePageInput) (*entity.LegalPage, error) {
	if errs := validatePageInput(in); errs != nil {
		return nil, errs
	}
	p := entity.NewLegalPage(in.Slug, in.Title, in.Content)
	if in.Published != nil {
		p.Published = *in.Published
	}
	return p, nil
}

func ValidateCreatePageContent(in CreatePageInput) (*entity.PageContent, error) {
	if errs := validatePageInput(in); errs != nil {
		return nil, errs
	}
	p := entity.NewPageContent(in.Slug, in.Title, in.Content)
	if in.Published != nil {
		p.Published = *in.Published
	}
	return p, nil
}

func validatePageInput(in CreatePageInput) ValidationErrors {
	var errs ValidationErrors
	requireText(&errs, "slug", in.Slug)
	requireText(&errs, "title", in.Title)
	requireText(&errs, "content", in.Content)
	return errs
}

type UpdatePageInput struct {
	Slug      *string `json:"slug"`
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func ValidateUpdatePage(in UpdatePageInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.Slug != nil {
		requireText(&errs, "slug", *in.Slug)
		patch["slug"] = *in.Slug
	}
	if in.Title != nil {
		requireText(&errs, "title", *in.Title)
		patch["title"] = *in.Title
	}
	if in.Content != nil {
		requireText(&errs, "content", *in.Content)
		patch["content"] = *in.Content
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
