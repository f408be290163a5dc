package repos

import (
	"opticaluna/internal/domain"

	"github.com/jmoiron/sqlx"
)

type AttributeRepo struct{ db *sqlx.DB }

func NewAttributeRepo(db *sqlx.DB) *AttributeRepo { return &AttributeRepo{db: db} }

// Upsert inserts or updates an attribute keyed on (type, code). Label and
// sort order are overwritten on conflict; type/code never change.
func (r *AttributeRepo) Upsert(a domain.Attribute) error {
	_, err := r.db.Exec(`
	  INSERT INTO attributes(type, code, label, sort_order, created_at)
	  VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(type, code) DO UPDATE
	  SET label = excluded.label,
	      sort_order = excluded.sort_order,
	      updated_at = CURRENT_TIMESTAMP
	`, a.Type, a.Code, a.Label, a.SortOrder)
	return err
}

// ByType lists attributes of one type in display order, for pickers.
func (r *AttributeRepo) ByType(attrType string) ([]domain.Attribute, error) {
	var out []domain.Attribute
	err := r.db.Select(&out, `
	  SELECT type, code, label, sort_order
	  FROM attributes
	  WHERE type = ?
	  ORDER BY sort_order, code
	`, attrType)
	return out, err
}

func (r *AttributeRepo) All() ([]domain.Attribute, error) {
	var out []domain.Attribute
	err := r.db.Select(&out, `
	  SELECT type, code, label, sort_order
	  FROM attributes
	  ORDER BY type, sort_order, code
	`)
	return out, err
}

func (r *AttributeRepo) Get(attrType, code string) (domain.Attribute, error) {
	var a domain.Attribute
	err := r.db.Get(&a, `
	  SELECT type, code, label, sort_order
	  FROM attributes
	  WHERE type = ? AND code = ?
	`, attrType, code)
	return a, err
}

func (r *AttributeRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM attributes`)
	return n, err
}
