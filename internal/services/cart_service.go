package services

import (
	"database/sql"

	"fixpos/internal/repos"
)

type CartService struct {
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods}
}

// Add puts qty more units of a product into the session cart, capped at the
// product's current stock (the POS selection invariant: a well-formed cart
// never asks for more than is on the shelf).
func (s *CartService) Add(sessionID, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}

	cur, err := s.Carts.ItemQty(cartID, productID)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	want := cur + qty
	if want > p.Quantity {
		want = p.Quantity
	}
	if want < 1 {
		// Out of stock and not yet in the cart: nothing to add.
		return nil
	}
	return s.Carts.SetItem(cartID, productID, want)
}

// SetQty pins a cart line to an exact quantity; zero or less removes the
// line, more than stock is capped at stock.
func (s *CartService) SetQty(sessionID, productID string, qty int) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return s.Carts.RemoveItem(cartID, productID)
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	if qty > p.Quantity {
		qty = p.Quantity
	}
	if qty < 1 {
		return s.Carts.RemoveItem(cartID, productID)
	}
	return s.Carts.SetItem(cartID, productID, qty)
}

type CartView struct {
	Items []repos.CartItemRow `json:"items"`
	Total float64             `json:"total"`
}

func (s *CartService) View(sessionID string) (CartView, error) {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return CartView{}, err
	}
	items, err := s.Carts.Items(cartID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.Subtotal
	}
	return CartView{Items: items, Total: total}, nil
}

func (s *CartService) Clear(sessionID string) error {
	cartID, err := s.Carts.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(cartID)
}
