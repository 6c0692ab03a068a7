package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreateProgramInput struct {
	BusinessModelID *string `json:"businessModelId"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Level           string  `json:"level"`
	AgeGroup        string  `json:"ageGroup"`
	WeeklyHours     *int    `json:"weeklyHours"`
	ImageURL        *string `json:"imageUrl"`
	Published       *bool   `json:"published"`
}

func ValidateCreateProgram(in CreateProgramInput) (*entity.Program, error) {
	var errs ValidationErrors
	requireText(&errs, "slug", in.Slug)
	requireText(&errs, "name", in.Name)
	requireText(&errs, "description", in.Description)
	if !entity.ProgramLevel(in.Level).Valid() {
		errs = append(errs, ValidationError{"level", "must be one of beginner, intermediate, advanced, professional"})
	}
	if !entity.AgeGroup(in.AgeGroup).Valid() {
		errs = append(errs, ValidationError{"ageGroup", "must be one of children, youth, adult, all_ages"})
	}
	if in.WeeklyHours != nil && *in.WeeklyHours < 0 {
		errs = append(errs, ValidationError{"weeklyHours", "must not be negative"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	p := entity.NewProgram(in.Slug, in.Name, in.Description, entity.ProgramLevel(in.Level), entity.AgeGroup(in.AgeGroup))
	p.BusinessModelID = in.BusinessModelID
	p.WeeklyHours = in.WeeklyHours
	p.ImageURL = in.ImageURL
	if in.Published != nil {
		p.Published = *in.Published
	}
	return p, nil
}

type UpdateProgramInput struct {
	BusinessModelID *string `json:"businessModelId"`
	Slug            *string `json:"slug"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Level           *string `json:"level"`
	AgeGroup        *string `json:"ageGroup"`
	WeeklyHours     *int    `json:"weeklyHours"`
	ImageURL        *string `json:"imageUrl"`
	Published       *bool   `json:"published"`
}

func ValidateUpdateProgram(in UpdateProgramInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.BusinessModelID != nil {
		patch["business_model_id"] = *in.BusinessModelID
	}
	if in.Slug != nil {
		requireText(&errs, "slug", *in.Slug)
		patch["slug"] = *in.Slug
	}
	if in.Name != nil {
		requireText(&errs, "name", *in.Name)
		patch["name"] = *in.Name
	}
	if in.Description != nil {
		requireText(&errs, "description", *in.Description)
		patch["description"] = *in.Description
	}
	if in.Level != nil {
		if !entity.ProgramLevel(*in.Level).Valid() {
			errs = append(errs, ValidationError{"level", "must be one of beginner, intermediate, advanced, professional"})
		}
		patch["level"] = *in.Level
	}
	if in.AgeGroup != nil {
		if !entity.AgeGroup(*in.AgeGroup).Valid() {
			errs = append(errs, ValidationError{"ageGroup", "must be one of children, youth, adult, all_ages"})
		}
		patch["age_group"] = *in.AgeGroup
	}
	if in.WeeklyHours != nil {
		if *in.WeeklyHours < 0 {
			errs = append(errs, ValidationError{"weeklyHours", "must not be negative"})
		}
		patch["weekly_hours"] = *in.WeeklyHours
	}
	if in.ImageURL != nil {
		patch["image_url"] = *in.ImageURL
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
