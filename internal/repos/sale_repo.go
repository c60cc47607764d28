package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"fixpos/internal/domain"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

type saleRow struct {
	ID        string          `db:"id"`
	Total     float64         `db:"total"`
	Profit    float64         `db:"profit"`
	Cost      sql.NullFloat64 `db:"cost"`
	CreatedAt string          `db:"created_at"`
}

func (r saleRow) toDomain() domain.Sale {
	return domain.Sale{
		ID:     r.ID,
		Total:  r.Total,
		Profit: r.Profit,
		// Legacy rows predate cost tracking: NULL reads as 0.
		Cost:      r.Cost.Float64,
		CreatedAt: parseTime(r.CreatedAt),
	}
}

// Create inserts a sale header. Sales are immutable once recorded; there is no
// update path.
func (r *SaleRepo) Create(id string, total, profit, cost float64, at time.Time) error {
	_, err := r.db.Exec(`
	  INSERT INTO sales(id, total, profit, cost, created_at)
	  VALUES(?, ?, ?, ?, ?)
	`, id, total, profit, cost, formatTime(at))
	return err
}

func (r *SaleRepo) InsertItem(saleID string, it domain.SaleItem) error {
	_, err := r.db.Exec(`
	  INSERT INTO sale_items(sale_id, product_id, name, price, purchase_price, qty)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, saleID, it.ProductID, it.Name, it.Price, it.PurchasePrice, it.Quantity)
	return err
}

func (r *SaleRepo) Get(id string) (domain.Sale, error) {
	var row saleRow
	if err := r.db.Get(&row, `
	  SELECT id, total, profit, cost, created_at FROM sales WHERE id = ?
	`, id); err != nil {
		return domain.Sale{}, err
	}
	s := row.toDomain()

	type itemRow struct {
		ProductID     string  `db:"product_id"`
		Name          string  `db:"name"`
		Price         float64 `db:"price"`
		PurchasePrice float64 `db:"purchase_price"`
		Qty           int     `db:"qty"`
	}
	var items []itemRow
	if err := r.db.Select(&items, `
	  SELECT product_id, name, price, purchase_price, qty
	  FROM sale_items WHERE sale_id = ? ORDER BY rowid
	`, id); err != nil {
		return domain.Sale{}, err
	}
	for _, it := range items {
		s.Items = append(s.Items, domain.SaleItem{
			ProductID:     it.ProductID,
			Name:          it.Name,
			Price:         it.Price,
			PurchasePrice: it.PurchasePrice,
			Quantity:      it.Qty,
		})
	}
	return s, nil
}

// ListAll returns sale headers in insertion order (items omitted; the
// aggregation engine only needs totals and dates).
func (r *SaleRepo) ListAll() ([]domain.Sale, error) {
	var rows []saleRow
	err := r.db.Select(&rows, `
	  SELECT id, total, profit, cost, created_at FROM sales ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SaleRepo) ListLatest(limit int) ([]domain.Sale, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []saleRow
	err := r.db.Select(&rows, `
	  SELECT id, total, profit, cost, created_at FROM sales ORDER BY rowid DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
