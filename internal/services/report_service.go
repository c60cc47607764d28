package services

import (
	"time"

	"fixpos/internal/report"
	"fixpos/internal/repos"
)

// ReportService loads a full snapshot of the entity store and hands it to the
// pure aggregation functions in internal/report. Aggregates are recomputed on
// every call; nothing is cached.
type ReportService struct {
	Prods   *repos.ProductRepo
	Sales   *repos.SaleRepo
	Repairs *repos.RepairRepo
	Prints  *repos.PrintRepo
	Ledger  *repos.LedgerRepo
}

func NewReportService(prods *repos.ProductRepo, sales *repos.SaleRepo, repairs *repos.RepairRepo, prints *repos.PrintRepo, ledger *repos.LedgerRepo) *ReportService {
	return &ReportService{Prods: prods, Sales: sales, Repairs: repairs, Prints: prints, Ledger: ledger}
}

func (s *ReportService) Snapshot() (report.Snapshot, error) {
	var (
		snap report.Snapshot
		err  error
	)
	if snap.Products, err = s.Prods.List(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Sales, err = s.Sales.ListAll(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Repairs, err = s.Repairs.List(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.PrintJobs, err = s.Prints.List(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Funds, err = s.Ledger.ListFunds(); err != nil {
		return report.Snapshot{}, err
	}
	if snap.Losses, err = s.Ledger.ListLosses(); err != nil {
		return report.Snapshot{}, err
	}
	return snap, nil
}

func (s *ReportService) Summary(now time.Time) (report.Summary, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(snap, now), nil
}
