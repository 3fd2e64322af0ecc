package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type SaleRepository interface {
	Create(s *models.Sale) (int64, error)
	GetByID(id int) (*models.Sale, error)
	GetByProposalID(proposalID int) (*models.Sale, error)
	List(limit, offset int) ([]*models.Sale, error)
	ListBySeller(sellerID, limit, offset int) ([]*models.Sale, error)
	Delete(id int) error
}

type saleRepository struct {
	db *sql.DB
}

func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

const saleColumns = `id, proposal_id, client_id, vehicle_id, seller_id, total_value, commission_value, closed_at`

func scanSale(row interface{ Scan(...interface{}) error }) (*models.Sale, error) {
	var s models.Sale
	err := row.Scan(&s.ID, &s.ProposalID, &s.ClientID, &s.VehicleID, &s.SellerID,
		&s.TotalValue, &s.CommissionValue, &s.ClosedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepository) Create(s *models.Sale) (int64, error) {
	const q = `
                INSERT INTO sales (proposal_id, client_id, vehicle_id, seller_id, total_value, commission_value, closed_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, s.ProposalID, s.ClientID, s.VehicleID, s.SellerID,
		s.TotalValue, s.CommissionValue, s.ClosedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create sale: %w", err)
	}
	return id, nil
}

func (r *saleRepository) GetByID(id int) (*models.Sale, error) {
	q := `SELECT ` + saleColumns + ` FROM sales WHERE id=$1`
	s, err := scanSale(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *saleRepository) GetByProposalID(proposalID int) (*models.Sale, error) {
	q := `SELECT ` + saleColumns + ` FROM sales WHERE proposal_id=$1`
	s, err := scanSale(r.db.QueryRow(q, proposalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by proposal: %w", err)
	}
	return s, nil
}

func (r *saleRepository) List(limit, offset int) ([]*models.Sale, error) {
	q := `SELECT ` + saleColumns + ` FROM sales ORDER BY closed_at DESC LIMIT $1 OFFSET $2`
	return r.querySales(q, limit, offset)
}

func (r *saleRepository) ListBySeller(sellerID, limit, offset int) ([]*models.Sale, error) {
	q := `SELECT ` + saleColumns + ` FROM sales WHERE seller_id=$1 ORDER BY closed_at DESC LIMIT $2 OFFSET $3`
	return r.querySales(q, sellerID, limit, offset)
}

func (r *saleRepository) Delete(id int) error {
	const q = `DELETE FROM sales WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *saleRepository) querySales(q string, args ...interface{}) ([]*models.Sale, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
