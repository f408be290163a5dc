package domain

// Attribute is a reusable categorical tag for eyewear (color, shape, brand…).
// The pair (Type, Code) is the natural key; Label and SortOrder are the only
// mutable fields once a row exists.
type Attribute struct {
	Type      string `db:"type"`
	Code      string `db:"code"`
	Label     string `db:"label"`
	SortOrder int    `db:"sort_order"`
}

// Known attribute types seeded by cmd/seed-attributes.
const (
	AttrColor     = "color"
	AttrShape     = "shape"
	AttrGender    = "gender"
	AttrMaterial  = "material"
	AttrPolarized = "polarized"
	AttrUV        = "uv_protection"
	AttrBrand     = "brand"
)

type Category struct {
	ID        string `db:"id"`
	Slug      string `db:"slug"`
	Name      string `db:"name"`
	ImageURL  string `db:"image_url"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Product struct {
	ID          string  `db:"id"`
	CategoryID  string  `db:"category_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Brand       string  `db:"brand_code"`
	Color       string  `db:"color_code"`
	Shape       string  `db:"shape_code"`
	Material    string  `db:"material_code"`
	Gender      string  `db:"gender_code"`
	Polarized   bool    `db:"polarized"`
	UV          string  `db:"uv_code"`
	Price       float64 `db:"price"`
	ImageURL    string  `db:"image_url"`
	Stock       int     `db:"stock"`
	Active      bool    `db:"active"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
}

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
