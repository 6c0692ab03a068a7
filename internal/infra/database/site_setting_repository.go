package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

type SiteSettingRepository struct {
	DB *sql.DB
}

func NewSiteSettingRepository(db *sql.DB) *SiteSettingRepository {
	return &SiteSettingRepository{DB: db}
}

func (r *SiteSettingRepository) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}

// Upsert crea la clave si no existe. Es la única entidad sin endpoint de
// creación: escribir ya es crear.
func (r *SiteSettingRepository) Upsert(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	query := `
		INSERT INTO site_settings (id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, key, value, updated_at
	`
	var s entity.SiteSetting
	err := r.DB.QueryRowContext(ctx, query, uuid.New().String(), key, value).Scan(
		&s.ID, &s.Key, &s.Value, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
