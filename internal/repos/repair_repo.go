package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"fixpos/internal/domain"
)

type RepairRepo struct{ db *sqlx.DB }

func NewRepairRepo(db *sqlx.DB) *RepairRepo { return &RepairRepo{db: db} }

type repairRow struct {
	ID            string         `db:"id"`
	CustomerName  string         `db:"customer_name"`
	CustomerPhone string         `db:"customer_phone"`
	Device        string         `db:"device"`
	Issue         string         `db:"issue"`
	Cost          float64        `db:"cost"`
	Status        string         `db:"status"`
	CreatedAt     string         `db:"created_at"`
	CompletedAt   sql.NullString `db:"completed_at"`
}

func (r repairRow) toDomain() domain.Repair {
	out := domain.Repair{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Device:        r.Device,
		Issue:         r.Issue,
		Cost:          r.Cost,
		Status:        domain.RepairStatus(r.Status),
		CreatedAt:     parseTime(r.CreatedAt),
	}
	if r.CompletedAt.Valid {
		t := parseTime(r.CompletedAt.String)
		out.CompletedAt = &t
	}
	return out
}

const repairCols = `
  id, customer_name, COALESCE(customer_phone,'') AS customer_phone, device,
  COALESCE(issue,'') AS issue, cost, status, created_at, completed_at`

func (r *RepairRepo) Insert(rep domain.Repair) error {
	_, err := r.db.Exec(`
	  INSERT INTO repairs(id, customer_name, customer_phone, device, issue, cost, status, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, rep.ID, rep.CustomerName, rep.CustomerPhone, rep.Device, rep.Issue, rep.Cost, string(rep.Status), formatTime(rep.CreatedAt))
	return err
}

func (r *RepairRepo) Get(id string) (domain.Repair, error) {
	var row repairRow
	if err := r.db.Get(&row, `SELECT `+repairCols+` FROM repairs WHERE id = ?`, id); err != nil {
		return domain.Repair{}, err
	}
	return row.toDomain(), nil
}

func (r *RepairRepo) List() ([]domain.Repair, error) {
	var rows []repairRow
	err := r.db.Select(&rows, `SELECT `+repairCols+` FROM repairs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Repair, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// UpdateStatus writes the new status; completed_at is touched only when the
// caller passes a completion time. Moving away from Completed keeps the old
// completed_at on purpose.
func (r *RepairRepo) UpdateStatus(id string, status domain.RepairStatus, completedAt *time.Time) error {
	if completedAt != nil {
		_, err := r.db.Exec(`UPDATE repairs SET status = ?, completed_at = ? WHERE id = ?`,
			string(status), formatTime(*completedAt), id)
		return err
	}
	_, err := r.db.Exec(`UPDATE repairs SET status = ? WHERE id = ?`, string(status), id)
	return err
}
