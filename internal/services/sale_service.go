package services

import (
	"database/sql"
	"errors"
	"time"

	"fixpos/internal/domain"
	"fixpos/internal/idgen"
	"fixpos/internal/repos"
)

// CartLine references a product chosen at the POS. Quantities were validated
// against stock at selection time; Process trusts them.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type SaleService struct {
	Prods *repos.ProductRepo
	Sales *repos.SaleRepo
	Carts *repos.CartRepo
}

func NewSaleService(prods *repos.ProductRepo, sales *repos.SaleRepo, carts *repos.CartRepo) *SaleService {
	return &SaleService{Prods: prods, Sales: sales, Carts: carts}
}

var ErrEmptyCart = errors.New("cart empty")

// mergeLines collapses repeated picks of the same product into one line,
// keeping first-pick order. A sale stores one snapshot row per product, so a
// product must not appear twice.
func mergeLines(lines []CartLine) []CartLine {
	merged := make([]CartLine, 0, len(lines))
	at := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		if i, ok := at[line.ProductID]; ok {
			merged[i].Qty += line.Qty
			continue
		}
		at[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// Process commits a sale: per line it snapshots the product, decrements stock
// by the cart quantity (no floor; a stale cart may oversell), and accumulates
// total, profit and cost. Lines whose product id is unknown are skipped.
// Returned events: always one SaleCompleted, plus one LowStock naming every
// touched product whose new quantity fell under the threshold.
func (s *SaleService) Process(lines []CartLine) (domain.Sale, []domain.Event, error) {
	if len(lines) == 0 {
		return domain.Sale{}, nil, ErrEmptyCart
	}

	now := time.Now()
	sale := domain.Sale{ID: idgen.New(), CreatedAt: now}
	var lowStock []string

	for _, line := range mergeLines(lines) {
		p, err := s.Prods.Get(line.ProductID)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return domain.Sale{}, nil, err
		}
		if err := s.Prods.AdjustQuantity(p.ID, -line.Qty); err != nil {
			return domain.Sale{}, nil, err
		}

		sale.Items = append(sale.Items, domain.SaleItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			PurchasePrice: p.PurchasePrice,
			Quantity:      line.Qty,
		})
		sale.Total += p.Price * float64(line.Qty)
		sale.Profit += (p.Price - p.PurchasePrice) * float64(line.Qty)
		sale.Cost += p.PurchasePrice * float64(line.Qty)

		if p.Quantity-line.Qty < domain.LowStockThreshold {
			lowStock = append(lowStock, p.Name)
		}
	}
	if len(sale.Items) == 0 {
		return domain.Sale{}, nil, ErrEmptyCart
	}

	if err := s.Sales.Create(sale.ID, sale.Total, sale.Profit, sale.Cost, now); err != nil {
		return domain.Sale{}, nil, err
	}
	for _, it := range sale.Items {
		if err := s.Sales.InsertItem(sale.ID, it); err != nil {
			return domain.Sale{}, nil, err
		}
	}

	events := []domain.Event{domain.SaleCompleted{SaleID: sale.ID, Total: sale.Total}}
	if len(lowStock) > 0 {
		events = append(events, domain.LowStock{Products: lowStock})
	}
	return sale, events, nil
}

// ProcessCart drains the server-side cart for a POS session through Process
// and clears it on success.
func (s *SaleService) ProcessCart(sessionID string) (domain.Sale, []domain.Event, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return domain.Sale{}, nil, err
	}
	items, err := s.Carts.Items(cartID)
	if err != nil {
		return domain.Sale{}, nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartLine{ProductID: it.ProductID, Qty: it.Qty})
	}
	sale, events, err := s.Process(lines)
	if err != nil {
		return domain.Sale{}, nil, err
	}
	_ = s.Carts.Clear(cartID)
	return sale, events, nil
}

func (s *SaleService) Get(id string) (domain.Sale, error) { return s.Sales.Get(id) }

func (s *SaleService) Latest(limit int) ([]domain.Sale, error) { return s.Sales.ListLatest(limit) }
