package repos

import (
	"opticaluna/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, category_id, name, description,
  brand_code, color_code, shape_code, material_code, gender_code,
  polarized, uv_code, price, image_url, stock, active,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) ListByCategory(catID string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE category_id = ? AND active = 1
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?
	`, catID, limit, offset)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// SearchFilter narrows a catalog search by attribute codes.
type SearchFilter struct {
	Query    string
	Category string
	Shape    string
	Color    string
	Brand    string
}

func (r *ProductRepo) Search(f SearchFilter, limit, offset int) ([]domain.Product, error) {
	where := `active = 1`
	args := []any{}
	if f.Query != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, "%"+f.Query+"%", "%"+f.Query+"%")
	}
	if f.Category != "" {
		where += ` AND category_id = ?`
		args = append(args, f.Category)
	}
	if f.Shape != "" {
		where += ` AND shape_code = ?`
		args = append(args, f.Shape)
	}
	if f.Color != "" {
		where += ` AND color_code = ?`
		args = append(args, f.Color)
	}
	if f.Brand != "" {
		where += ` AND brand_code = ?`
		args = append(args, f.Brand)
	}

	sql := `
	  SELECT ` + productCols + `
	  FROM products
	  WHERE ` + where + `
	  ORDER BY created_at DESC
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, sql, args...)
	return out, err
}

func (r *ProductRepo) Stock(id string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT stock FROM products WHERE id = ?`, id)
	return n, err
}

func (r *ProductRepo) SetStock(id string, qty int) error {
	_, err := r.db.Exec(`UPDATE products SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, qty, id)
	return err
}

// DecrementStock fails (no rows) when remaining stock is insufficient.
func (r *ProductRepo) DecrementStock(id string, qty int) error {
	res, err := r.db.Exec(`
	  UPDATE products SET stock = stock - ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND stock >= ?
	`, qty, id, qty)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

type StockRow struct {
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Stock     int    `db:"stock"`
}

// ListStock returns product stock levels for the back office.
func (r *ProductRepo) ListStock() ([]StockRow, error) {
	var rows []StockRow
	err := r.db.Select(&rows, `
	  SELECT id AS product_id, name, stock
	  FROM products
	  ORDER BY name
	`)
	return rows, err
}
