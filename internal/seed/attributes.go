// Package seed holds the reference attribute list and the upsert run that
// brings the attributes table into agreement with it. Safe to run against a
// live database any number of times.
package seed

import (
	"fmt"
	"log"

	"opticaluna/internal/domain"
	"opticaluna/internal/repos"
)

// Attributes is the fixed reference list. Rows already in the table that are
// not listed here are left untouched; the run never deletes.
var Attributes = []domain.Attribute{
	{Type: domain.AttrColor, Code: "negro", Label: "Negro", SortOrder: 1},
	{Type: domain.AttrColor, Code: "carey", Label: "Carey", SortOrder: 2},
	{Type: domain.AttrColor, Code: "dorado", Label: "Dorado", SortOrder: 3},
	{Type: domain.AttrColor, Code: "plateado", Label: "Plateado", SortOrder: 4},
	{Type: domain.AttrColor, Code: "azul", Label: "Azul", SortOrder: 5},
	{Type: domain.AttrColor, Code: "rojo", Label: "Rojo", SortOrder: 6},
	{Type: domain.AttrColor, Code: "transparente", Label: "Transparente", SortOrder: 7},

	{Type: domain.AttrShape, Code: "aviador", Label: "Aviador", SortOrder: 1},
	{Type: domain.AttrShape, Code: "redondo", Label: "Redondo", SortOrder: 2},
	{Type: domain.AttrShape, Code: "cuadrado", Label: "Cuadrado", SortOrder: 3},
	{Type: domain.AttrShape, Code: "rectangular", Label: "Rectangular", SortOrder: 4},
	{Type: domain.AttrShape, Code: "cat-eye", Label: "Cat Eye", SortOrder: 5},
	{Type: domain.AttrShape, Code: "ovalado", Label: "Ovalado", SortOrder: 6},

	{Type: domain.AttrGender, Code: "hombre", Label: "Hombre", SortOrder: 1},
	{Type: domain.AttrGender, Code: "mujer", Label: "Mujer", SortOrder: 2},
	{Type: domain.AttrGender, Code: "unisex", Label: "Unisex", SortOrder: 3},
	{Type: domain.AttrGender, Code: "nino", Label: "Niño", SortOrder: 4},

	{Type: domain.AttrMaterial, Code: "acetato", Label: "Acetato", SortOrder: 1},
	{Type: domain.AttrMaterial, Code: "metal", Label: "Metal", SortOrder: 2},
	{Type: domain.AttrMaterial, Code: "titanio", Label: "Titanio", SortOrder: 3},
	{Type: domain.AttrMaterial, Code: "tr90", Label: "TR90", SortOrder: 4},

	{Type: domain.AttrPolarized, Code: "si", Label: "Polarizado", SortOrder: 1},
	{Type: domain.AttrPolarized, Code: "no", Label: "No polarizado", SortOrder: 2},

	{Type: domain.AttrUV, Code: "uv400", Label: "UV400", SortOrder: 1},
	{Type: domain.AttrUV, Code: "uv380", Label: "UV380", SortOrder: 2},
	{Type: domain.AttrUV, Code: "sin-uv", Label: "Sin filtro UV", SortOrder: 3},

	{Type: domain.AttrBrand, Code: "rayban", Label: "Ray-Ban", SortOrder: 1},
	{Type: domain.AttrBrand, Code: "oakley", Label: "Oakley", SortOrder: 2},
	{Type: domain.AttrBrand, Code: "vogue", Label: "Vogue", SortOrder: 3},
	{Type: domain.AttrBrand, Code: "luna", Label: "Luna Collection", SortOrder: 4},
}

// Run upserts the reference list one record at a time, in list order. The
// first failed upsert aborts the run; records applied before the failure stay
// applied (re-running is the recovery procedure, the run is idempotent).
func Run(repo *repos.AttributeRepo, list []domain.Attribute) (int, error) {
	for i, a := range list {
		if err := repo.Upsert(a); err != nil {
			return i, fmt.Errorf("seed %s/%s: %w", a.Type, a.Code, err)
		}
		log.Printf("[seed] %s/%s -> %q (order %d)", a.Type, a.Code, a.Label, a.SortOrder)
	}
	log.Printf("[seed] done, %d attributes applied", len(list))
	return len(list), nil
}
