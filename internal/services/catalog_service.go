package services

import (
	"database/sql"

	"opticaluna/internal/domain"
	"opticaluna/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
	Attrs *repos.AttributeRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo, attrs *repos.AttributeRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods, Attrs: attrs}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) CategoryBySlug(slug string) (domain.Category, error) {
	return s.Cats.BySlug(slug)
}

func (s *CatalogService) ListProductsByCategory(catID string, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListByCategory(catID, pageSize, offset)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Search(f repos.SearchFilter, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.Search(f, pageSize, offset)
}

// AttributesByType feeds the attribute pickers (filters, admin forms).
func (s *CatalogService) AttributesByType(attrType string) ([]domain.Attribute, error) {
	return s.Attrs.ByType(attrType)
}

// CheckAvailability maps stock to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *CatalogService) CheckAvailability(productID string) (domain.Availability, error) {
	qty, err := s.Prods.Stock(productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Availability{Status: "OUT_OF_STOCK", Qty: 0}, nil
		}
		return domain.Availability{}, err
	}

	status := "OUT_OF_STOCK"
	switch {
	case qty >= 5:
		status = "IN_STOCK"
	case qty > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: qty}, nil
}
