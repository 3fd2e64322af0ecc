package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type WarrantyRepository interface {
	Create(w *models.Warranty) (int64, error)
	GetByID(id int) (*models.Warranty, error)
	List(limit, offset int) ([]*models.Warranty, error)
	ListByClient(clientID int) ([]*models.Warranty, error)
	Delete(id int) error
}

type warrantyRepository struct {
	db *sql.DB
}

func NewWarrantyRepository(db *sql.DB) WarrantyRepository {
	return &warrantyRepository{db: db}
}

const warrantyColumns = `id, warranty_number, client_id, vehicle_id, contract_id, coverage_months, coverage_km, coverage_terms, start_date, created_at`

func scanWarranty(row interface{ Scan(...interface{}) error }) (*models.Warranty, error) {
	var w models.Warranty
	err := row.Scan(&w.ID, &w.WarrantyNumber, &w.ClientID, &w.VehicleID, &w.ContractID,
		&w.CoverageMonths, &w.CoverageKM, &w.CoverageTerms, &w.StartDate, &w.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *warrantyRepository) Create(w *models.Warranty) (int64, error) {
	const q = `
                INSERT INTO warranties (warranty_number, client_id, vehicle_id, contract_id, coverage_months, coverage_km, coverage_terms, start_date, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, w.WarrantyNumber, w.ClientID, w.VehicleID, w.ContractID,
		w.CoverageMonths, w.CoverageKM, w.CoverageTerms, w.StartDate, w.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create warranty: %w", err)
	}
	return id, nil
}

func (r *warrantyRepository) GetByID(id int) (*models.Warranty, error) {
	q := `SELECT ` + warrantyColumns + ` FROM warranties WHERE id=$1`
	w, err := scanWarranty(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get warranty: %w", err)
	}
	return w, nil
}

func (r *warrantyRepository) List(limit, offset int) ([]*models.Warranty, error) {
	q := `SELECT ` + warrantyColumns + ` FROM warranties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryWarranties(q, limit, offset)
}

func (r *warrantyRepository) ListByClient(clientID int) ([]*models.Warranty, error) {
	q := `SELECT ` + warrantyColumns + ` FROM warranties WHERE client_id=$1 ORDER BY created_at DESC`
	return r.queryWarranties(q, clientID)
}

func (r *warrantyRepository) Delete(id int) error {
	const q = `DELETE FROM warranties WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete warranty: %w", err)
	}
	return nil
}

func (r *warrantyRepository) queryWarranties(q string, args ...interface{}) ([]*models.Warranty, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list warranties: %w", err)
	}
	defer rows.Close()

	var out []*models.Warranty
	for rows.Next() {
		w, err := scanWarranty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
