package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreateInstructorInput struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Quote     *string `json:"quote"`
	Bio       string  `json:"bio"`
	PhotoURL  *string `json:"photoUrl"`
	Featured  *bool   `json:"featured"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateCreateInstructor(in CreateInstructorInput) (*entity.Instructor, error) {
	var errs ValidationErrors
	requireText(&errs, "name", in.Name)
	requireText(&errs, "role", in.Role)
	requireText(&errs, "bio", in.Bio)
	if len(errs) > 0 {
		return nil, errs
	}

	i := entity.NewInstructor(in.Name, in.Role, in.Bio)
	i.Quote = in.Quote
	i.PhotoURL = in.PhotoURL
	if in.Featured != nil {
		i.Featured = *in.Featured
	}
	if in.Order != nil {
		i.Order = *in.Order
	}
	if in.Published != nil {
		i.Published = *in.Published
	}
	return i, nil
}

type UpdateInstructorInput struct {
	Name      *string `json:"name"`
	Role      *string `json:"role"`
	Quote     *string `json:"quote"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photoUrl"`
	Featured  *bool   `json:"featured"`
	Order     *int    `json:"order"`
	Published *bool   `json:"published"`
}

func ValidateUpdateInstructor(in UpdateInstructorInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.Name != nil {
		requireText(&errs, "name", *in.Name)
		patch["name"] = *in.Name
	}
	if in.Role != nil {
		requireText(&errs, "role", *in.Role)
		patch["role"] = *in.Role
	}
	if in.Quote != nil {
		patch["quote"] = *in.Quote
	}
	if in.Bio != nil {
		requireText(&errs, "bio", *in.Bio)
		patch["bio"] = *in.Bio
	}
	if in.PhotoURL != nil {
		patch["photo_url"] = *in.PhotoURL
	}
	if in.Featured != nil {
		patch["featured"] = *in.Featured
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

type CreateInstructorSpecialtyInput struct {
	InstructorID string `json:"instructorId"`
	ProgramID    string `json:"programId"`
	IsPrimary    *bool  `json:"isPrimary"`
}

func ValidateCreateInstructorSpecialty(in CreateInstructorSpecialtyInput) (*entity.InstructorSpecialty, error) {
	var errs ValidationErrors
	requireText(&errs, "instructorId", in.InstructorID)
	requireText(&errs, "programId", in.ProgramID)
	if len(errs) > 0 {
		return nil, errs
	}

	isPrimary := false
	if in.IsPrimary != nil {
		isPrimary = *in.IsPrimary
	}
	return entity.NewInstructorSpecialty(in.InstructorID, in.ProgramID, isPrimary), nil
}
