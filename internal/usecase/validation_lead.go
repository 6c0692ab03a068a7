package usecase

import "github.com/kinesiszgz/kinesis-backend/internal/entity"

type CreateLeadInput struct {
	Type            string         `json:"type"`
	Status          *string        `json:"status"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           *string        `json:"phone"`
	Message         *string        `json:"message"`
	ProgramID       *string        `json:"programId"`
	BusinessModelID *string        `json:"businessModelId"`
	Metadata        map[string]any `json:"metadata"`
	Notes           *string        `json:"notes"`
}

func ValidateCreateLead(in CreateLeadInput) (*entity.Lead, error) {
	var errs ValidationErrors
	if !entity.LeadType(in.Type).Valid() {
		errs = append(errs, ValidationError{"type", "must be one of contact, pre_registration, elite_booking, wedding"})
	}
	requireText(&errs, "name", in.Name)
	requireEmail(&errs, "email", in.Email)
	if in.Status != nil && !entity.LeadStatus(*in.Status).Valid() {
		errs = append(errs, ValidationError{"status", "must be one of new, contacted, closed"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	l := entity.NewLead(entity.LeadType(in.Type), in.Name, in.Email)
	if in.Status != nil {
		l.Status = entity.LeadStatus(*in.Status)
	}
	l.Phone = in.Phone
	l.Message = in.Message
	l.ProgramID = in.ProgramID
	l.BusinessModelID = in.BusinessModelID
	l.Metadata = in.Metadata
	l.Notes = in.Notes
	return l, nil
}

type UpdateLeadInput struct {
	Type            *string        `json:"type"`
	Status          *string        `json:"status"`
	Name            *string        `json:"name"`
	Email           *string        `json:"email"`
	Phone           *string        `json:"phone"`
	Message         *string        `json:"message"`
	ProgramID       *string        `json:"programId"`
	BusinessModelID *string        `json:"businessModelId"`
	Metadata        map[string]any `json:"metadata"`
	Notes           *string        `json:"notes"`
}

// ValidateUpdateLead: el estado es reasignable en cualquier dirección,
// no hay pipeline estricto (closed puede volver a new).
func ValidateUpdateLead(in UpdateLeadInput) (entity.Patch, error) {
	var errs ValidationErrors
	patch := entity.Patch{}

	if in.Type != nil {
		if !entity.LeadType(*in.Type).Valid() {
			errs = append(errs, ValidationError{"type", "must be one of contact, pre_registration, elite_booking, wedding"})
		}
		patch["type"] = *in.Type
	}
	if in.Status != nil {
		if !entity.LeadStatus(*in.Status).Valid() {
			errs = append(errs, ValidationError{"status", "must be one of new, contacted, closed"})
		}
		patch["status"] = *in.Status
	}
	if in.Name != nil {
		requireText(&errs, "name", *in.Name)
		patch["name"] = *in.Name
	}
	if in.Email != nil {
		requireEmail(&errs, "email", *in.Email)
		patch["email"] = *in.Email
	}
	if in.Phone != nil {
		patch["phone"] = *in.Phone
	}
	if in.Message != nil {
		patch["message"] = *in.Message
	}
	if in.ProgramID != nil {
		patch["program_id"] = *in.ProgramID
	}
	if in.BusinessModelID != nil {
		patch["business_model_id"] = *in.BusinessModelID
	}
	if in.Metadata != nil {
		patch["metadata"] = in.Metadata
	}
	if in.Notes != nil {
		patch["notes"] = *in.Notes
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if len(patch) == 0 {
		return nil, ErrEmptyUpdate
	}
	return patch, nil
}
