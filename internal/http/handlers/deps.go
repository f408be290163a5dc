package handlers

import (
	"opticaluna/internal/repos"
	"opticaluna/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	FavoriteHandler *FavoriteHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	attrRepo := repos.NewAttributeRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	favRepo := repos.NewFavoriteRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo, attrRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(cartRepo, prodRepo, orderRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Cart: cartSvc, Order: orderSvc, Repo: orderRepo, Auth: auth},
		FavoriteHandler: &FavoriteHandler{Favs: favRepo},
		AdminHandler: &AdminHandler{
			Orders: orderRepo,
			Prods:  prodRepo,
			Users:  auth.Users,
			Cats:   catRepo,
			Attrs:  attrRepo,
		},
	}
}
