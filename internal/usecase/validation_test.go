package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestValidateCreateBusinessModelSuccess(t *testing.T) {
	input := CreateBusinessModelInput{
		Slug:        "elite-on-demand",
		Name:        "Élite On Demand",
		Description: "Clases privadas a medida",
		Features:    []string{"Clases 100% personalizadas"},
		Advantages:  []string{"Progreso acelerado"},
		Benefits:    []string{"Resultados visibles"},
		Order:       intPtr(3),
	}

	model, err := ValidateCreateBusinessModel(input)

	assert.NoError(t, err)
	assert.NotEmpty(t, model.ID)
	assert.Equal(t, "elite-on-demand", model.Slug)
	assert.Equal(t, 3, model.Order)
	assert.True(t, model.Published) // default cuando no se manda
}

func TestValidateCreateBusinessModelEmptyLists(t *testing.T) {
	input := CreateBusinessModelInput{
		Slug:        "vacio",
		Name:        "Sin contenido",
		Description: "Un pilar sin listas",
		Features:    []string{},
	}

	_, err := ValidateCreateBusinessModel(input)

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	fields := map[string]bool{}
	for _, v := range verrs {
		fields[v.Field] = true
	}
	assert.True(t, fields["features"])
	assert.True(t, fields["advantages"])
	assert.True(t, fields["benefits"])
}

func TestValidateUpdateBusinessModelEmptyPatch(t *testing.T) {
	_, err := ValidateUpdateBusinessModel(UpdateBusinessModelInput{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestValidateUpdateBusinessModelPatchColumns(t *testing.T) {
	patch, err := ValidateUpdateBusinessModel(UpdateBusinessModelInput{
		ImageURL:  strPtr("/assets/nuevo.png"),
		Order:     intPtr(7),
		Published: boolPtr(false),
	})

	assert.NoError(t, err)
	assert.Equal(t, "/assets/nuevo.png", patch["image_url"])
	assert.Equal(t, 7, patch["sort_order"])
	assert.Equal(t, false, patch["published"])
	assert.Len(t, patch, 3)
}

func TestValidateCreateProgramInvalidEnums(t *testing.T) {
	_, err := ValidateCreateProgram(CreateProgramInput{
		Slug:        "prueba",
		Name:        "Prueba",
		Description: "desc",
		Level:       "ninja",
		AgeGroup:    "bebes",
	})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestValidateCreateScheduleSlotBadTime(t *testing.T) {
	_, err := ValidateCreateScheduleSlot(CreateScheduleSlotInput{
		DayOfWeek: "monday",
		StartTime: "25:99",
		EndTime:   "19:00",
	})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "startTime", verrs[0].Field)
}

func TestValidateCreateScheduleSlotBadDay(t *testing.T) {
	_, err := ValidateCreateScheduleSlot(CreateScheduleSlotInput{
		DayOfWeek: "someday",
		StartTime: "18:00",
		EndTime:   "19:00",
	})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "dayOfWeek", verrs[0].Field)
}

func TestValidateCreateLeadBadEmail(t *testing.T) {
	_, err := ValidateCreateLead(CreateLeadInput{
		Type:  "contact",
		Name:  "Ana",
		Email: "no-es-un-email",
	})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email", verrs[0].Field)
}

func TestValidateCreateLeadDefaultsStatusNew(t *testing.T) {
	lead, err := ValidateCreateLead(CreateLeadInput{
		Type:  "pre_registration",
		Name:  "Ana",
		Email: "ana@x.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new", string(lead.Status))
}

// El estado de un lead es una clasificación libre: no hay máquina de
// estados, así que cerrar y reabrir es legal en ambas direcciones.
func TestValidateUpdateLeadAnyStatusTransition(t *testing.T) {
	for _, status := range []string{"new", "contacted", "closed", "new"} {
		patch, err := ValidateUpdateLead(UpdateLeadInput{Status: strPtr(status)})
		assert.NoError(t, err)
		assert.Equal(t, status, patch["status"])
	}
}

func TestValidateUpdateLeadInvalidStatus(t *testing.T) {
	_, err := ValidateUpdateLead(UpdateLeadInput{Status: strPtr("archived")})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "status", verrs[0].Field)
}

func TestValidateCreatePricingTierRequiresPrice(t *testing.T) {
	_, err := ValidateCreatePricingTier(CreatePricingTierInput{Name: "Bono 5"})

	var verrs ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Equal(t, "priceAmount", verrs[0].Field)
}
