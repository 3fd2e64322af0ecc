package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"autorevenda/internal/models"
)

type ProposalRepository interface {
	Create(p *models.Proposal) (int64, error)
	Update(p *models.Proposal) error
	UpdateStatus(id int, status models.ProposalStatus) error
	GetByID(id int) (*models.Proposal, error)
	List(limit, offset int) ([]*models.Proposal, error)
	ListByClient(clientID int) ([]*models.Proposal, error)
	ListBySeller(sellerID, limit, offset int) ([]*models.Proposal, error)
	Delete(id int) error
}

type proposalRepository struct {
	db *sql.DB
}

func NewProposalRepository(db *sql.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

const proposalColumns = `id, proposal_number, status, type, client_id, vehicle_id, bank_id, seller_id,
        vehicle_value, down_payment, financed_value, installments, installment_value, cet, notes, created_at, updated_at`

func scanProposal(row interface{ Scan(...interface{}) error }) (*models.Proposal, error) {
	var p models.Proposal
	err := row.Scan(&p.ID, &p.ProposalNumber, &p.Status, &p.Type, &p.ClientID, &p.VehicleID,
		&p.BankID, &p.SellerID, &p.VehicleValue, &p.DownPayment, &p.FinancedValue,
		&p.Installments, &p.InstallmentValue, &p.CET, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proposalRepository) Create(p *models.Proposal) (int64, error) {
	const q = `
                INSERT INTO proposals (proposal_number, status, type, client_id, vehicle_id, bank_id, seller_id,
                        vehicle_value, down_payment, financed_value, installments, installment_value, cet, notes, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, p.ProposalNumber, p.Status, p.Type, p.ClientID, p.VehicleID, p.BankID, p.SellerID,
		p.VehicleValue, p.DownPayment, p.FinancedValue, p.Installments, p.InstallmentValue, p.CET, p.Notes,
		p.CreatedAt, p.UpdatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create proposal: %w", err)
	}
	return id, nil
}

func (r *proposalRepository) Update(p *models.Proposal) error {
	const q = `
                UPDATE proposals
                SET status=$1, type=$2, bank_id=$3, vehicle_value=$4, down_payment=$5, financed_value=$6,
                    installments=$7, installment_value=$8, cet=$9, notes=$10, updated_at=$11
                WHERE id=$12
        `
	if _, err := r.db.Exec(q, p.Status, p.Type, p.BankID, p.VehicleValue, p.DownPayment, p.FinancedValue,
		p.Installments, p.InstallmentValue, p.CET, p.Notes, time.Now(), p.ID); err != nil {
		return fmt.Errorf("update proposal: %w", err)
	}
	return nil
}

func (r *proposalRepository) UpdateStatus(id int, status models.ProposalStatus) error {
	const q = `UPDATE proposals SET status=$1, updated_at=$2 WHERE id=$3`
	if _, err := r.db.Exec(q, status, time.Now(), id); err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}
	return nil
}

func (r *proposalRepository) GetByID(id int) (*models.Proposal, error) {
	q := `SELECT ` + proposalColumns + ` FROM proposals WHERE id=$1`
	p, err := scanProposal(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	return p, nil
}

func (r *proposalRepository) List(limit, offset int) ([]*models.Proposal, error) {
	q := `SELECT ` + proposalColumns + ` FROM proposals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryProposals(q, limit, offset)
}

func (r *proposalRepository) ListByClient(clientID int) ([]*models.Proposal, error) {
	q := `SELECT ` + proposalColumns + ` FROM proposals WHERE client_id=$1 ORDER BY created_at DESC`
	return r.queryProposals(q, clientID)
}

func (r *proposalRepository) ListBySeller(sellerID, limit, offset int) ([]*models.Proposal, error) {
	q := `SELECT ` + proposalColumns + ` FROM proposals WHERE seller_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProposals(q, sellerID, limit, offset)
}

func (r *proposalRepository) Delete(id int) error {
	const q = `DELETE FROM proposals WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	return nil
}

func (r *proposalRepository) queryProposals(q string, args ...interface{}) ([]*models.Proposal, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var res []*models.Proposal
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
