package services

import (
	"database/sql"
	"time"

	"fixpos/internal/domain"
	"fixpos/internal/idgen"
	"fixpos/internal/repos"
)

type InventoryService struct {
	Prods *repos.ProductRepo
}

func NewInventoryService(prods *repos.ProductRepo) *InventoryService {
	return &InventoryService{Prods: prods}
}

type AddProductInput struct {
	Name          string
	Barcode       string
	Description   string
	Quantity      int
	Price         float64
	PurchasePrice float64
	Category      domain.Category
	Image         string
}

func (s *InventoryService) AddProduct(in AddProductInput) (domain.Product, error) {
	p := domain.Product{
		ID:            idgen.New(),
		Name:          in.Name,
		Barcode:       in.Barcode,
		Description:   in.Description,
		Quantity:      in.Quantity,
		Price:         in.Price,
		PurchasePrice: in.PurchasePrice,
		Category:      in.Category,
		Image:         in.Image,
		CreatedAt:     time.Now(),
	}
	if err := s.Prods.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *InventoryService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *InventoryService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// FindProduct resolves a scanned barcode or a typed search term: exact barcode
// match first, else case-insensitive name substring, first hit in store order.
// Returns (nil, nil) when nothing matches.
func (s *InventoryService) FindProduct(term string) (*domain.Product, error) {
	p, err := s.Prods.Find(term)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// LowStock lists products under the restock threshold for the wanted-products
// page.
func (s *InventoryService) LowStock() ([]domain.Product, error) {
	return s.Prods.LowStock()
}

// AttachImage stores an image reference produced by the external generator.
// The reference is opaque to the core and stored verbatim.
func (s *InventoryService) AttachImage(productID, ref string) error {
	if _, err := s.Prods.Get(productID); err != nil {
		return err
	}
	return s.Prods.SetImage(productID, ref)
}
