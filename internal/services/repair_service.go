package services

import (
	"database/sql"
	"time"

	"fixpos/internal/domain"
	"fixpos/internal/idgen"
	"fixpos/internal/repos"
)

type RepairService struct {
	Repairs *repos.RepairRepo
}

func NewRepairService(repairs *repos.RepairRepo) *RepairService {
	return &RepairService{Repairs: repairs}
}

type AddRepairInput struct {
	CustomerName  string
	CustomerPhone string
	Device        string
	Issue         string
	Cost          float64
	Status        domain.RepairStatus
}

func (s *RepairService) Add(in AddRepairInput) (domain.Repair, error) {
	r := domain.Repair{
		ID:            idgen.New(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Device:        in.Device,
		Issue:         in.Issue,
		Cost:          in.Cost,
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}
	if err := s.Repairs.Insert(r); err != nil {
		return domain.Repair{}, err
	}
	return r, nil
}

func (s *RepairService) List() ([]domain.Repair, error) {
	return s.Repairs.List()
}

// UpdateStatus moves a repair to a new status. Unknown ids are a silent no-op
// with no events. The first transition into Completed stamps the completion
// time and emits exactly one RepairCompleted carrying the repair's cost;
// re-completing an already Completed repair emits nothing, and moving away
// from Completed leaves the completion time in place.
func (s *RepairService) UpdateStatus(id string, status domain.RepairStatus) ([]domain.Event, error) {
	r, err := s.Repairs.Get(id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if status == domain.StatusCompleted && r.Status != domain.StatusCompleted {
		now := time.Now()
		if err := s.Repairs.UpdateStatus(id, status, &now); err != nil {
			return nil, err
		}
		return []domain.Event{domain.RepairCompleted{RepairID: id, Cost: r.Cost}}, nil
	}

	if err := s.Repairs.UpdateStatus(id, status, nil); err != nil {
		return nil, err
	}
	return nil, nil
}
