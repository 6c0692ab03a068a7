package mail

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinesiszgz/kinesis-backend/internal/infra/queue"
)

type stubSettings struct {
	values map[string]string
	err    error
}

func (s *stubSettings) All(ctx context.Context) (map[string]string, error) {
	return s.values, s.err
}

func testSender(settings SettingsSource) *EmailSender {
	s := NewEmailSender("smtp.test", 587, "user", "pass", "web@kinesis.test", "staff@kinesis.test", settings)
	s.TemplatePath = filepath.Join("..", "..", "..", "templates", "lead_notification.html")
	return s
}

func TestBuildEmailUsesSiteSettings(t *testing.T) {
	sender := testSender(&stubSettings{values: map[string]string{
		"business_name": "Kinesis Academia de Danza",
		"phone":         "+34 600 000 000",
		"instagram":     "@kinesiszgz",
	}})

	subject, body, err := sender.BuildEmail(context.Background(), queue.LeadCapturedPayload{
		LeadID:  "lead-1",
		Type:    "pre_registration",
		Name:    "Lucía",
		Email:   "lucia@example.com",
		Message: "Quiero apuntarme a ballet",
	})

	assert.NoError(t, err)
	assert.Equal(t, "💃 Nuevo lead: Lucía (Preinscripción)", subject)
	assert.Contains(t, body, "Kinesis Academia de Danza")
	assert.Contains(t, body, "+34 600 000 000")
	assert.Contains(t, body, "@kinesiszgz")
	assert.Contains(t, body, "lucia@example.com")
	assert.Contains(t, body, "Quiero apuntarme a ballet")
}

// Si los ajustes no se pueden leer, el aviso sale igual con el nombre
// por defecto: perder el correo sería peor que un pie genérico.
func TestBuildEmailFallsBackWhenSettingsUnavailable(t *testing.T) {
	sender := testSender(&stubSettings{err: errors.New("conexión caída")})

	subject, body, err := sender.BuildEmail(context.Background(), queue.LeadCapturedPayload{
		LeadID: "lead-2",
		Type:   "contact",
		Name:   "Mario",
		Email:  "mario@example.com",
	})

	assert.NoError(t, err)
	assert.Contains(t, subject, "Mario")
	assert.Contains(t, body, "Kinesis")
}

func TestBuildEmailWithoutSettingsSource(t *testing.T) {
	sender := testSender(nil)

	_, body, err := sender.BuildEmail(context.Background(), queue.LeadCapturedPayload{
		LeadID: "lead-3",
		Type:   "wedding",
		Name:   "Ana",
		Email:  "ana@example.com",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "Kinesis")
	assert.Contains(t, body, "Baile de boda")
}
