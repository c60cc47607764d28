package services

import (
	"time"

	"fixpos/internal/domain"
	"fixpos/internal/idgen"
	"fixpos/internal/repos"
)

type PrintService struct {
	Prints *repos.PrintRepo
}

func NewPrintService(prints *repos.PrintRepo) *PrintService {
	return &PrintService{Prints: prints}
}

// Add records a print-service job. Profit is fixed at creation time
// (price - cost); the job is immutable afterwards.
func (s *PrintService) Add(price, cost float64) (domain.PrintJob, []domain.Event, error) {
	j := domain.PrintJob{
		ID:        idgen.New(),
		Price:     price,
		Cost:      cost,
		Profit:    price - cost,
		CreatedAt: time.Now(),
	}
	if err := s.Prints.Insert(j); err != nil {
		return domain.PrintJob{}, nil, err
	}
	return j, []domain.Event{domain.PrintJobAdded{Profit: j.Profit}}, nil
}

func (s *PrintService) List() ([]domain.PrintJob, error) {
	return s.Prints.List()
}
