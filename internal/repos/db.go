package repos

import (
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// single connection: sqlite serializes writers anyway, and a :memory:
	// database exists per connection
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the shop catalog if the store is empty (idempotent; safe to run
	// every start).
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products (quantity lives on the row; sales may drive it negative, no floor)
CREATE TABLE IF NOT EXISTS products(
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
CREATE INDEX IF NOT EXISTS idx_products_name    ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode);

-- Sales: immutable headers plus product snapshots per line.
-- cost is nullable: rows from before cost tracking carry NULL, read as 0.
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  total NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  cost NUMERIC,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at);

CREATE TABLE IF NOT EXISTS sale_items(
  sale_id TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  purchase_price NUMERIC NOT NULL,
  qty INTEGER NOT NULL,
  PRIMARY KEY (sale_id, product_id)
);

-- Repairs
CREATE TABLE IF NOT EXISTS repairs(
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
CREATE INDEX IF NOT EXISTS idx_repairs_status ON repairs(status);

-- Print jobs: profit fixed at creation time
CREATE TABLE IF NOT EXISTS print_jobs(
  id TEXT PRIMARY KEY,
  price NUMERIC NOT NULL,
  cost NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  created_at TEXT NOT NULL
);

-- Manual ledgers: append-only, rowid is the only identity
CREATE TABLE IF NOT EXISTS funds(
  amount NUMERIC NOT NULL CHECK (amount > 0),
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS losses(
  amount NUMERIC NOT NULL CHECK (amount > 0),
  created_at TEXT NOT NULL
);

-- POS carts (selection stage; nothing here feeds the ledgers)
CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);
CREATE TABLE IF NOT EXISTS cart_items(
  cart_id TEXT NOT NULL REFERENCES carts(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (cart_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting starter catalog")

	now := formatTime(time.Now())
	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,barcode,description,quantity,price,purchase_price,category,image,created_at) VALUES
	  ('1','iPhone 13 Screen Replacement','1111111111111','High-quality OLED screen replacement for iPhone 13.',10,129.99,85.00,'Phone Accessories & Parts','',?),
	  ('2','Samsung Galaxy S21 Battery','2222222222222','Original replacement battery for Samsung Galaxy S21.',15,49.99,28.00,'Phone Accessories & Parts','',?),
	  ('3','USB-C Charging Cable','3333333333333','3ft braided USB-C to USB-A charging cable.',50,12.50,4.75,'Phone Accessories & Parts','',?),
	  ('4','Generic Smartphone Case','4444444444444','Clear TPU protective case for various smartphone models.',1,9.99,3.50,'Phone Accessories & Parts','',?),
	  ('5','Premium Soda Can','5555555555555','A refreshing can of premium soda.',100,1.99,0.90,'General','',?),
	  ('6','Gourmet Coffee Beans','6666666666666','1lb bag of whole bean, dark roast coffee.',30,18.00,11.25,'General','',?),
	  ('7','Artisanal Bread Loaf','7777777777777','Freshly baked sourdough bread.',1,7.50,3.80,'General','',?)`,
		now, now, now, now, now, now, now)
	return tx.Commit()
}

// Timestamps are stored as RFC3339Nano text with the writer's offset, so the
// calendar-day aggregation predicates survive a round trip intact.
func formatTime(t time.Time) string { return t.Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, s)
	}
	return t
}
