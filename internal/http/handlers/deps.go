package handlers

import (
	"github.com/jmoiron/sqlx"

	"fixpos/internal/config"
	"fixpos/internal/imagegen"
	"fixpos/internal/repos"
	"fixpos/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	SaleHandler    *SaleHandler
	RepairHandler  *RepairHandler
	PrintHandler   *PrintHandler
	LedgerHandler  *LedgerHandler
	ReportHandler  *ReportHandler
	ReceiptHandler *ReceiptHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)
	repairRepo := repos.NewRepairRepo(db)
	printRepo := repos.NewPrintRepo(db)
	ledgerRepo := repos.NewLedgerRepo(db)
	cartRepo := repos.NewCartRepo(db)

	invSvc := services.NewInventoryService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	saleSvc := services.NewSaleService(prodRepo, saleRepo, cartRepo)
	repairSvc := services.NewRepairService(repairRepo)
	printSvc := services.NewPrintService(printRepo)
	ledgerSvc := services.NewLedgerService(ledgerRepo)
	reportSvc := services.NewReportService(prodRepo, saleRepo, repairRepo, printRepo, ledgerRepo)

	images := imagegen.New(cfg.ImageAPIURL, cfg.ImageAPIKey)

	return &Deps{
		ProductHandler: &ProductHandler{Inv: invSvc, Images: images},
		CartHandler:    &CartHandler{Cart: cartSvc},
		SaleHandler:    &SaleHandler{Sales: saleSvc},
		RepairHandler:  &RepairHandler{Repairs: repairSvc},
		PrintHandler:   &PrintHandler{Prints: printSvc},
		LedgerHandler:  &LedgerHandler{Ledger: ledgerSvc},
		ReportHandler:  &ReportHandler{Reports: reportSvc},
		ReceiptHandler: &ReceiptHandler{Sales: saleSvc, Inv: invSvc},
	}
}
