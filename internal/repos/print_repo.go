package repos

import (
	"github.com/jmoiron/sqlx"

	"fixpos/internal/domain"
)

type PrintRepo struct{ db *sqlx.DB }

func NewPrintRepo(db *sqlx.DB) *PrintRepo { return &PrintRepo{db: db} }

type printRow struct {
	ID        string  `db:"id"`
	Price     float64 `db:"price"`
	Cost      float64 `db:"cost"`
	Profit    float64 `db:"profit"`
	CreatedAt string  `db:"created_at"`
}

func (r *PrintRepo) Insert(j domain.PrintJob) error {
	_, err := r.db.Exec(`
	  INSERT INTO print_jobs(id, price, cost, profit, created_at)
	  VALUES(?, ?, ?, ?, ?)
	`, j.ID, j.Price, j.Cost, j.Profit, formatTime(j.CreatedAt))
	return err
}

func (r *PrintRepo) List() ([]domain.PrintJob, error) {
	var rows []printRow
	if err := r.db.Select(&rows, `
	  SELECT id, price, cost, profit, created_at FROM print_jobs ORDER BY rowid
	`); err != nil {
		return nil, err
	}
	out := make([]domain.PrintJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.PrintJob{
			ID:        row.ID,
			Price:     row.Price,
			Cost:      row.Cost,
			Profit:    row.Profit,
			CreatedAt: parseTime(row.CreatedAt),
		})
	}
	return out, nil
}
