package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"

	"fixpos/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Barcode       string  `db:"barcode"`
	Description   string  `db:"description"`
	Quantity      int     `db:"quantity"`
	Price         float64 `db:"price"`
	PurchasePrice float64 `db:"purchase_price"`
	Category      string  `db:"category"`
	Image         string  `db:"image"`
	CreatedAt     string  `db:"created_at"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:            r.ID,
		Name:          r.Name,
		Barcode:       r.Barcode,
		Description:   r.Description,
		Quantity:      r.Quantity,
		Price:         r.Price,
		PurchasePrice: r.PurchasePrice,
		Category:      domain.Category(r.Category),
		Image:         r.Image,
		CreatedAt:     parseTime(r.CreatedAt),
	}
}

const productCols = `
  id, name, barcode, COALESCE(description,'') AS description, quantity,
  price, purchase_price, category, COALESCE(image,'') AS image, created_at`

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,barcode,description,quantity,price,purchase_price,category,image,created_at)
	  VALUES(?,?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Barcode, p.Description, p.Quantity, p.Price, p.PurchasePrice, string(p.Category), p.Image, formatTime(p.CreatedAt))
	return err
}

// List returns every product in insertion order. Lookup semantics depend on
// that order ("first match in store order"), so rowid, not created_at.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `SELECT `+productCols+` FROM products ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var row productRow
	if err := r.db.Get(&row, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

// Find matches a scanned barcode exactly or the lowercase name by substring,
// returning the first hit in insertion order. sql.ErrNoRows when nothing
// matches.
func (r *ProductRepo) Find(term string) (domain.Product, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	var row productRow
	err := r.db.Get(&row, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE barcode = ? OR instr(LOWER(name), ?) > 0
	  ORDER BY rowid
	  LIMIT 1
	`, term, term)
	if err != nil {
		return domain.Product{}, err
	}
	return row.toDomain(), nil
}

// AdjustQuantity applies a delta without a stock guard: the POS layer enforces
// "cart qty <= stock" at selection time, and a stale cart is allowed to drive
// the quantity negative rather than fail the recorded sale.
func (r *ProductRepo) AdjustQuantity(id string, delta int) error {
	_, err := r.db.Exec(`UPDATE products SET quantity = quantity + ? WHERE id = ?`, delta, id)
	return err
}

func (r *ProductRepo) LowStock() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `
	  SELECT `+productCols+` FROM products WHERE quantity < ? ORDER BY rowid
	`, domain.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// SetImage stores the generated image reference verbatim.
func (r *ProductRepo) SetImage(id, ref string) error {
	_, err := r.db.Exec(`UPDATE products SET image = ? WHERE id = ?`, ref, id)
	return err
}
