package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"fixpos/internal/domain"
	"fixpos/internal/repos"
	"fixpos/internal/services"
)

const testSchema = `
PRAGMA foreign_keys = ON;
CREATE TABLE products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  barcode TEXT NOT NULL UNIQUE,
  description TEXT,
  quantity INTEGER NOT NULL DEFAULT 0,
  price NUMERIC NOT NULL CHECK (price >= 0),
  purchase_price NUMERIC NOT NULL CHECK (purchase_price >= 0),
  category TEXT NOT NULL CHECK (category IN ('General','Phone Accessories & Parts')),
  image TEXT,
  created_at TEXT NOT NULL
);
CREATE TABLE sales(
  id TEXT PRIMARY KEY,
  total NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  cost NUMERIC,
  created_at TEXT NOT NULL
);
CREATE TABLE sale_items(
  sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  purchase_price NUMERIC NOT NULL,
  qty INTEGER NOT NULL,
  PRIMARY KEY (sale_id, product_id)
);
CREATE TABLE repairs(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  customer_phone TEXT,
  device TEXT NOT NULL,
  issue TEXT,
  cost NUMERIC NOT NULL CHECK (cost >= 0),
  status TEXT NOT NULL CHECK (status IN ('Pending','In Progress','Completed','Cancelled')),
  created_at TEXT NOT NULL,
  completed_at TEXT
);
CREATE TABLE print_jobs(
  id TEXT PRIMARY KEY,
  price NUMERIC NOT NULL,
  cost NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE funds(
  amount NUMERIC NOT NULL CHECK (amount > 0),
  created_at TEXT NOT NULL
);
CREATE TABLE losses(
  amount NUMERIC NOT NULL CHECK (amount > 0),
  created_at TEXT NOT NULL
);
CREATE TABLE carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);
CREATE TABLE cart_items(
  cart_id TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);
`

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open memdb: %v", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func addProduct(t *testing.T, inv *services.InventoryService, name, barcode string, qty int, price, purchase float64) domain.Product {
	t.Helper()
	p, err := inv.AddProduct(services.AddProductInput{
		Name:          name,
		Barcode:       barcode,
		Quantity:      qty,
		Price:         price,
		PurchasePrice: purchase,
		Category:      domain.CategoryGeneral,
	})
	if err != nil {
		t.Fatalf("add product %s: %v", name, err)
	}
	return p
}

func newInventory(db *sqlx.DB) *services.InventoryService {
	return services.NewInventoryService(repos.NewProductRepo(db))
}

func newSales(db *sqlx.DB) *services.SaleService {
	return services.NewSaleService(repos.NewProductRepo(db), repos.NewSaleRepo(db), repos.NewCartRepo(db))
}

func newReport(db *sqlx.DB) *services.ReportService {
	return services.NewReportService(
		repos.NewProductRepo(db),
		repos.NewSaleRepo(db),
		repos.NewRepairRepo(db),
		repos.NewPrintRepo(db),
		repos.NewLedgerRepo(db),
	)
}
