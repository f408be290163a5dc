package repos

import (
	"opticaluna/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT
	    id, slug, name, image_url,
	    created_at,
	    COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) BySlug(slug string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT
	    id, slug, name, image_url,
	    created_at,
	    COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE LOWER(slug) = LOWER(?)
	`, slug)
	return c, err
}

// UpdateImageBySlug patches a category's image URL. Returns the number of
// rows touched so maintenance scripts can report a missing slug.
func (r *CategoryRepo) UpdateImageBySlug(slug, imageURL string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE categories
	  SET image_url = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE LOWER(slug) = LOWER(?)
	`, imageURL, slug)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
