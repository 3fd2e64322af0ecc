package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type BankRepository interface {
	Create(b *models.Bank) (int64, error)
	Update(b *models.Bank) error
	GetByID(id int) (*models.Bank, error)
	List() ([]*models.Bank, error)
	Delete(id int) error
}

type bankRepository struct {
	db *sql.DB
}

func NewBankRepository(db *sql.DB) BankRepository {
	return &bankRepository{db: db}
}

func (r *bankRepository) Create(b *models.Bank) (int64, error) {
	const q = `INSERT INTO banks (name, commission_rate, active) VALUES ($1, $2, $3) RETURNING id`
	var id int64
	if err := r.db.QueryRow(q, b.Name, b.CommissionRate, b.Active).Scan(&id); err != nil {
		return 0, fmt.Errorf("create bank: %w", err)
	}
	return id, nil
}

func (r *bankRepository) Update(b *models.Bank) error {
	const q = `UPDATE banks SET name=$1, commission_rate=$2, active=$3 WHERE id=$4`
	if _, err := r.db.Exec(q, b.Name, b.CommissionRate, b.Active, b.ID); err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	return nil
}

func (r *bankRepository) GetByID(id int) (*models.Bank, error) {
	const q = `SELECT id, name, commission_rate, active FROM banks WHERE id=$1`
	var b models.Bank
	if err := r.db.QueryRow(q, id).Scan(&b.ID, &b.Name, &b.CommissionRate, &b.Active); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank: %w", err)
	}
	return &b, nil
}

func (r *bankRepository) List() ([]*models.Bank, error) {
	const q = `SELECT id, name, commission_rate, active FROM banks ORDER BY name`
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	var out []*models.Bank
	for rows.Next() {
		var b models.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.CommissionRate, &b.Active); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (r *bankRepository) Delete(id int) error {
	const q = `DELETE FROM banks WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	return nil
}
