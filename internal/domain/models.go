package domain

import "time"

type Category string

const (
	CategoryGeneral    Category = "General"
	CategoryPhoneParts Category = "Phone Accessories & Parts"
)

// LowStockThreshold: products below this quantity show up on the
// wanted-products list and trigger low-stock events after a sale.
const LowStockThreshold = 2

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Barcode       string    `json:"barcode"`
	Description   string    `json:"description"`
	Quantity      int       `json:"quantity"`
	Price         float64   `json:"price"`
	PurchasePrice float64   `json:"purchasePrice"`
	Category      Category  `json:"category"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SaleItem is a snapshot of the product at sale time; later price or name
// changes never rewrite recorded sales.
type SaleItem struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchasePrice"`
	Quantity      int     `json:"quantity"`
}

type Sale struct {
	ID     string     `json:"id"`
	Items  []SaleItem `json:"items,omitempty"`
	Total  float64    `json:"total"`
	Profit float64    `json:"profit"`
	// Cost is stored NULL on rows recorded before cost tracking existed;
	// every read folds that to 0.
	Cost      float64   `json:"cost"`
	CreatedAt time.Time `json:"date"`
}

type RepairStatus string

const (
	StatusPending    RepairStatus = "Pending"
	StatusInProgress RepairStatus = "In Progress"
	StatusCompleted  RepairStatus = "Completed"
	StatusCancelled  RepairStatus = "Cancelled"
)

type Repair struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Device        string       `json:"device"`
	Issue         string       `json:"issueDescription"`
	Cost          float64      `json:"cost"`
	Status        RepairStatus `json:"status"`
	CreatedAt     time.Time    `json:"creationDate"`
	// CompletedAt is set on the first transition into Completed and never
	// cleared, even if the status later moves away from Completed.
	CompletedAt *time.Time `json:"completionDate,omitempty"`
}

type PrintJob struct {
	ID        string    `json:"id"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost"`
	Profit    float64   `json:"profit"`
	CreatedAt time.Time `json:"date"`
}

// Fund is a manual capital injection; Loss a manual deduction. Both are
// append-only ledger entries with no identity beyond position.
type Fund struct {
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"date"`
}

type Loss struct {
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"date"`
}
