package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kinesiszgz/kinesis-backend/internal/entity"
)

const faqFields = `id, category, question, answer, sort_order, published, created_at, updated_at`

var faqColumns = []string{"category", "question", "answer", "sort_order", "published"}

type FaqRepository struct {
	DB *sql.DB
}

func NewFaqRepository(db *sql.DB) *FaqRepository {
	return &FaqRepository{DB: db}
}

func scanFaq(row rowScanner) (*entity.Faq, error) {
	var f entity.Faq
	err := row.Scan(
		&f.ID, &f.Category, &f.Question, &f.Answer,
		&f.Order, &f.Published, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FaqRepository) List(ctx context.Context, vis entity.Visibility) ([]entity.Faq, error) {
	query := `SELECT ` + faqFields + ` FROM faqs`
	if vis == entity.VisibilityPublic {
		query += ` WHERE published = TRUE`
	}
	query += ` ORDER BY sort_order`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []entity.Faq{}
	for rows.Next() {
		f, err := scanFaq(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, *f)
	}
	return faqs, rows.Err()
}

func (r *FaqRepository) FindByID(ctx context.Context, id string) (*entity.Faq, error) {
	query := `SELECT ` + faqFields + ` FROM faqs WHERE id = $1`
	f, err := scanFaq(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return f, err
}

func (r *FaqRepository) Create(ctx context.Context, f *entity.Faq) error {
	query := `
		INSERT INTO faqs (id, category, question, answer, sort_order, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.Category, f.Question, f.Answer,
		f.Order, f.Published, f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (r *FaqRepository) Update(ctx context.Context, id string, patch entity.Patch) (*entity.Faq, error) {
	set, args := setClause(patch, faqColumns)
	if set == "" {
		return r.FindByID(ctx, id)
	}
	query := fmt.Sprintf(`UPDATE faqs SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+faqFields, set, len(args)+1)
	args = append(args, id)

	f, err := scanFaq(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return f, err
}

func (r *FaqRepository) Delete(ctx context.Context, id string) (*entity.Faq, error) {
	query := `DELETE FROM faqs WHERE id = $1 RETURNING ` + faqFields
	f, err := scanFaq(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	return f, err
}
