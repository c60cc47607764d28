// Package report derives the financial read-model from the raw event logs.
// Everything is recomputed from a full Snapshot on every read; there are no
// running balances to drift out of sync with the stored events.
package report

import "fixpos/internal/domain"

// Snapshot is an immutable copy of the entity store taken at read time. The
// dependency of each aggregate on the store is exactly the fields listed here.
type Snapshot struct {
	Products  []domain.Product
	Sales     []domain.Sale
	Repairs   []domain.Repair
	PrintJobs []domain.PrintJob
	Funds     []domain.Fund
	Losses    []domain.Loss
}
