package handlers

import (
	"github.com/jmoiron/sqlx"

	"campos/internal/config"
	"campos/internal/kv"
	"campos/internal/repos"
	"campos/internal/services"
)

type Deps struct {
	ProductHandler   *ProductHandler
	CategoryHandler  *CategoryHandler
	CartHandler      *CartHandler
	StockHandler     *StockHandler
	OrderHandler     *OrderHandler
	HistoryHandler   *HistoryHandler
	DashboardHandler *DashboardHandler
	SettingsHandler  *SettingsHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, store kv.Store) *Deps {
	txnRepo := repos.NewTransactionRepo(db)
	cashierRepo := repos.NewCashierRepo(db)

	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService()
	stockSvc := services.NewStockService(catalogSvc)
	settingsSvc := services.NewSettingsService(store, cfg.Store, cashierRepo)
	orderSvc := services.NewOrderService(cartSvc, catalogSvc, settingsSvc, txnRepo, store)

	return &Deps{
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc, Catalog: catalogSvc, Settings: settingsSvc},
		StockHandler:     &StockHandler{Stock: stockSvc, Catalog: catalogSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc, Settings: settingsSvc, Txns: txnRepo},
		HistoryHandler:   &HistoryHandler{Txns: txnRepo},
		DashboardHandler: &DashboardHandler{Txns: txnRepo, Order: orderSvc},
		SettingsHandler:  &SettingsHandler{Settings: settingsSvc},
	}
}
