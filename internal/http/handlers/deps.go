package handlers

import (
	"github.com/jmoiron/sqlx"

	"turatti/internal/config"
	"turatti/internal/repos"
	"turatti/internal/services"
)

type Deps struct {
	ProductHandler     *ProductHandler
	CategoryHandler    *CategoryHandler
	SubcategoryHandler *SubcategoryHandler
	StoreHandler       *StoreHandler
	SiteHandler        *SiteHandler
	PageHandler        *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	subcatRepo := repos.NewSubcategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	storeRepo := repos.NewStoreRepo(db)
	salesRepo := repos.NewSalespersonRepo(db)
	siteRepo := repos.NewSiteRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, subcatRepo, prodRepo)
	dirSvc := services.NewDirectoryService(storeRepo, salesRepo)
	siteSvc := services.NewSiteService(siteRepo)

	return &Deps{
		ProductHandler:     &ProductHandler{Catalog: catalogSvc},
		CategoryHandler:    &CategoryHandler{Catalog: catalogSvc},
		SubcategoryHandler: &SubcategoryHandler{Catalog: catalogSvc},
		StoreHandler:       &StoreHandler{Dir: dirSvc},
		SiteHandler:        &SiteHandler{Site: siteSvc},
		PageHandler:        &PageHandler{Catalog: catalogSvc, Site: siteSvc, Cfg: cfg},
	}
}
