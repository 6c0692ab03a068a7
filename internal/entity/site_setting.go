package entity

import (
	"context"
	"time"
)

// SiteSetting es un par clave→valor de configuración del sitio.
// No hay endpoint de creación: el PUT por clave hace upsert.
type SiteSetting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Claves conocidas (las que edita el CMS). Cualquier otra clave sigue
// siendo válida: el almacén es un mapa genérico.
const (
	SettingBusinessName = "business_name"
	SettingAddress      = "address"
	SettingPhone        = "phone"
	SettingEmail        = "email"
	SettingFacebook     = "facebook"
	SettingInstagram    = "instagram"
	SettingTikTok       = "tiktok"
	SettingYouTube      = "youtube"
)

// SiteConfig es la vista tipada sobre las claves conocidas, para los
// consumidores del proceso (p. ej. la notificación de leads).
type SiteConfig struct {
	BusinessName string
	Address      string
	Phone        string
	Email        string
	Facebook     string
	Instagram    string
	TikTok       string
	YouTube      string
}

func NewSiteConfig(values map[string]string) SiteConfig {
	return SiteConfig{
		BusinessName: values[SettingBusinessName],
		Address:      values[SettingAddress],
		Phone:        values[SettingPhone],
		Email:        values[SettingEmail],
		Facebook:     values[SettingFacebook],
		Instagram:    values[SettingInstagram],
		TikTok:       values[SettingTikTok],
		YouTube:      values[SettingYouTube],
	}
}

type SiteSettingRepository interface {
	// All devuelve el mapa clave→valor completo.
	All(ctx context.Context) (map[string]string, error)
	// Upsert actualiza la clave si existe y la crea si no.
	Upsert(ctx context.Context, key, value string) (*SiteSetting, error)
}
