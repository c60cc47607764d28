package services

import (
	"time"

	"fixpos/internal/repos"
)

type LedgerService struct {
	Ledger *repos.LedgerRepo
}

func NewLedgerService(ledger *repos.LedgerRepo) *LedgerService {
	return &LedgerService{Ledger: ledger}
}

// AddFunds records a manual capital injection. Non-positive amounts are a
// silent no-op: the store stays untouched and no error is returned, so a
// caller cannot tell "ignored" from "applied" without reading it back.
func (s *LedgerService) AddFunds(amount float64) error {
	if amount <= 0 {
		return nil
	}
	return s.Ledger.InsertFund(amount, time.Now())
}

// AddLoss records a manual deduction; same no-op policy as AddFunds.
func (s *LedgerService) AddLoss(amount float64) error {
	if amount <= 0 {
		return nil
	}
	return s.Ledger.InsertLoss(amount, time.Now())
}
