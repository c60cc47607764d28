package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"fixpos/internal/domain"
)

// LedgerRepo covers both append-only manual ledgers: capital injections
// (funds) and manual deductions (losses). Entries are never updated or
// deleted; corrections are new entries.
type LedgerRepo struct{ db *sqlx.DB }

func NewLedgerRepo(db *sqlx.DB) *LedgerRepo { return &LedgerRepo{db: db} }

type ledgerRow struct {
	Amount    float64 `db:"amount"`
	CreatedAt string  `db:"created_at"`
}

func (r *LedgerRepo) InsertFund(amount float64, at time.Time) error {
	_, err := r.db.Exec(`INSERT INTO funds(amount, created_at) VALUES(?, ?)`, amount, formatTime(at))
	return err
}

func (r *LedgerRepo) InsertLoss(amount float64, at time.Time) error {
	_, err := r.db.Exec(`INSERT INTO losses(amount, created_at) VALUES(?, ?)`, amount, formatTime(at))
	return err
}

func (r *LedgerRepo) ListFunds() ([]domain.Fund, error) {
	var rows []ledgerRow
	if err := r.db.Select(&rows, `SELECT amount, created_at FROM funds ORDER BY rowid`); err != nil {
		return nil, err
	}
	out := make([]domain.Fund, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Fund{Amount: row.Amount, CreatedAt: parseTime(row.CreatedAt)})
	}
	return out, nil
}

func (r *LedgerRepo) ListLosses() ([]domain.Loss, error) {
	var rows []ledgerRow
	if err := r.db.Select(&rows, `SELECT amount, created_at FROM losses ORDER BY rowid`); err != nil {
		return nil, err
	}
	out := make([]domain.Loss, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Loss{Amount: row.Amount, CreatedAt: parseTime(row.CreatedAt)})
	}
	return out, nil
}
