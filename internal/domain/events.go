package domain

// Event is a notification emitted by a mutation. The core returns events to
// its caller instead of pushing to any particular UI channel; the handler
// layer decides how to surface them.
type Event interface {
	Kind() string
}

type SaleCompleted struct {
	SaleID string  `json:"saleId"`
	Total  float64 `json:"total"`
}

func (SaleCompleted) Kind() string { return "sale.completed" }

// LowStock names every product whose quantity dropped below the threshold
// during a single sale.
type LowStock struct {
	Products []string `json:"products"`
}

func (LowStock) Kind() string { return "stock.low" }

type RepairCompleted struct {
	RepairID string  `json:"repairId"`
	Cost     float64 `json:"cost"`
}

func (RepairCompleted) Kind() string { return "repair.completed" }

type PrintJobAdded struct {
	Profit float64 `json:"profit"`
}

func (PrintJobAdded) Kind() string { return "print.added" }
