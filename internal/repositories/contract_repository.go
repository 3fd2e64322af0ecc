package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"autorevenda/internal/models"
)

type ContractRepository interface {
	Create(ct *models.Contract) (int64, error)
	GetByID(id int) (*models.Contract, error)
	GetByProposalID(proposalID int) (*models.Contract, error)
	List(limit, offset int) ([]*models.Contract, error)
	ListByClient(clientID int) ([]*models.Contract, error)
	MarkSigned(id int, signedAt time.Time) error
	Delete(id int) error
}

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, contract_number, client_id, vehicle_id, proposal_id, payment_type, total_value,
        down_payment, installments, installment_value, due_day, first_due_date,
        signed, signed_at, client_signature_path, vendor_signature_path, created_at`

func scanContract(row interface{ Scan(...interface{}) error }) (*models.Contract, error) {
	var ct models.Contract
	err := row.Scan(&ct.ID, &ct.ContractNumber, &ct.ClientID, &ct.VehicleID, &ct.ProposalID,
		&ct.PaymentType, &ct.TotalValue, &ct.DownPayment, &ct.Installments, &ct.InstallmentValue,
		&ct.DueDay, &ct.FirstDueDate, &ct.Signed, &ct.SignedAt,
		&ct.ClientSignaturePath, &ct.VendorSignaturePath, &ct.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *contractRepository) Create(ct *models.Contract) (int64, error) {
	const q = `
                INSERT INTO contracts (contract_number, client_id, vehicle_id, proposal_id, payment_type, total_value,
                        down_payment, installments, installment_value, due_day, first_due_date,
                        signed, client_signature_path, vendor_signature_path, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, ct.ContractNumber, ct.ClientID, ct.VehicleID, ct.ProposalID,
		ct.PaymentType, ct.TotalValue, ct.DownPayment, ct.Installments, ct.InstallmentValue,
		ct.DueDay, ct.FirstDueDate, ct.Signed, ct.ClientSignaturePath, ct.VendorSignaturePath,
		ct.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create contract: %w", err)
	}
	return id, nil
}

func (r *contractRepository) GetByID(id int) (*models.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE id=$1`
	ct, err := scanContract(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return ct, nil
}

func (r *contractRepository) GetByProposalID(proposalID int) (*models.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE proposal_id=$1`
	ct, err := scanContract(r.db.QueryRow(q, proposalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract by proposal: %w", err)
	}
	return ct, nil
}

func (r *contractRepository) List(limit, offset int) ([]*models.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryContracts(q, limit, offset)
}

func (r *contractRepository) ListByClient(clientID int) ([]*models.Contract, error) {
	q := `SELECT ` + contractColumns + ` FROM contracts WHERE client_id=$1 ORDER BY created_at DESC`
	return r.queryContracts(q, clientID)
}

func (r *contractRepository) MarkSigned(id int, signedAt time.Time) error {
	const q = `UPDATE contracts SET signed=true, signed_at=$1 WHERE id=$2`
	if _, err := r.db.Exec(q, signedAt, id); err != nil {
		return fmt.Errorf("mark contract signed: %w", err)
	}
	return nil
}

func (r *contractRepository) Delete(id int) error {
	const q = `DELETE FROM contracts WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

func (r *contractRepository) queryContracts(q string, args ...interface{}) ([]*models.Contract, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var res []*models.Contract
	for rows.Next() {
		ct, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, ct)
	}
	return res, rows.Err()
}
