package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
	"github.com/kinesiszgz/kinesis-backend/internal/infra/queue"
)

// SettingsSource da acceso a los ajustes del sitio que editan desde el CMS.
// Lo satisface el repositorio de site_settings.
type SettingsSource interface {
	All(ctx context.Context) (map[string]string, error)
}

// LeadEmailData alimenta la plantilla templates/lead_notification.html.
type LeadEmailData struct {
	LeadID   string
	Type     string
	Name     string
	Email    string
	Phone    string
	Message  string
	Business entity.SiteConfig
}

var leadTypeLabels = map[string]string{
	"contact":          "Contacto general",
	"pre_registration": "Preinscripción",
	"elite_booking":    "Reserva Élite",
	"wedding":          "Baile de boda",
}

// EmailSender envía por SMTP la notificación interna de nuevo lead.
// La cabecera y el pie del correo salen de site_settings, así el nombre
// del negocio y el contacto se editan desde el CMS sin tocar código.
type EmailSender struct {
	Host         string
	Port         int
	User         string
	Password     string
	From         string
	NotifyTo     string
	Settings     SettingsSource
	TemplatePath string
}

func NewEmailSender(host string, port int, user, password, from, notifyTo string, settings SettingsSource) *EmailSender {
	return &EmailSender{
		Host:         host,
		Port:         port,
		User:         user,
		Password:     password,
		From:         from,
		NotifyTo:     notifyTo,
		Settings:     settings,
		TemplatePath: filepath.Join("templates", "lead_notification.html"),
	}
}

// siteConfig lee los ajustes con fallback: si la consulta falla, el correo
// sale igualmente con el nombre por defecto.
func (s *EmailSender) siteConfig(ctx context.Context) entity.SiteConfig {
	cfg := entity.SiteConfig{BusinessName: "Kinesis"}
	if s.Settings == nil {
		return cfg
	}
	values, err := s.Settings.All(ctx)
	if err != nil {
		log.Printf("⚠️ No se pudieron leer los ajustes del sitio para el email: %v", err)
		return cfg
	}
	loaded := entity.NewSiteConfig(values)
	if loaded.BusinessName == "" {
		loaded.BusinessName = cfg.BusinessName
	}
	return loaded
}

// BuildEmail monta asunto y cuerpo HTML sin tocar SMTP.
func (s *EmailSender) BuildEmail(ctx context.Context, payload queue.LeadCapturedPayload) (subject, body string, err error) {
	label := leadTypeLabels[payload.Type]
	if label == "" {
		label = payload.Type
	}

	data := LeadEmailData{
		LeadID:   payload.LeadID,
		Type:     label,
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Message:  payload.Message,
		Business: s.siteConfig(ctx),
	}

	t, err := template.ParseFiles(s.TemplatePath)
	if err != nil {
		return "", "", fmt.Errorf("error leyendo plantilla de email: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("error procesando plantilla: %w", err)
	}

	subject = fmt.Sprintf("💃 Nuevo lead: %s (%s)", payload.Name, label)
	return subject, buf.String(), nil
}

func (s *EmailSender) NotifyLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	subject, body, err := s.BuildEmail(ctx, payload)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.NotifyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error enviando email SMTP: %w", err)
	}

	return nil
}
