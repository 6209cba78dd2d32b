package handlers

import (
	"stockroom/internal/repos"
	"stockroom/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler     *HomeHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	SaleHandler     *SaleHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	salesSvc := services.NewSalesService(saleRepo)

	return &Deps{
		HomeHandler:     &HomeHandler{},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		SaleHandler:     &SaleHandler{Sales: salesSvc},
	}
}
