package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type ReceiptRepository interface {
	Create(rc *models.Receipt) (int64, error)
	GetByID(id int) (*models.Receipt, error)
	List(limit, offset int) ([]*models.Receipt, error)
	ListByClient(clientID int) ([]*models.Receipt, error)
	Delete(id int) error
}

type receiptRepository struct {
	db *sql.DB
}

func NewReceiptRepository(db *sql.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

const receiptColumns = `id, receipt_number, client_id, vehicle_id, proposal_id, amount, payment_method, reference, payer_name, payer_cpf, issued_at`

func scanReceipt(row interface{ Scan(...interface{}) error }) (*models.Receipt, error) {
	var rc models.Receipt
	err := row.Scan(&rc.ID, &rc.ReceiptNumber, &rc.ClientID, &rc.VehicleID, &rc.ProposalID,
		&rc.Amount, &rc.PaymentMethod, &rc.Reference, &rc.PayerName, &rc.PayerCPF, &rc.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *receiptRepository) Create(rc *models.Receipt) (int64, error) {
	const q = `
                INSERT INTO receipts (receipt_number, client_id, vehicle_id, proposal_id, amount, payment_method, reference, payer_name, payer_cpf, issued_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, rc.ReceiptNumber, rc.ClientID, rc.VehicleID, rc.ProposalID,
		rc.Amount, rc.PaymentMethod, rc.Reference, rc.PayerName, rc.PayerCPF, rc.IssuedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create receipt: %w", err)
	}
	return id, nil
}

func (r *receiptRepository) GetByID(id int) (*models.Receipt, error) {
	q := `SELECT ` + receiptColumns + ` FROM receipts WHERE id=$1`
	rc, err := scanReceipt(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return rc, nil
}

func (r *receiptRepository) List(limit, offset int) ([]*models.Receipt, error) {
	q := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY issued_at DESC LIMIT $1 OFFSET $2`
	return r.queryReceipts(q, limit, offset)
}

func (r *receiptRepository) ListByClient(clientID int) ([]*models.Receipt, error) {
	q := `SELECT ` + receiptColumns + ` FROM receipts WHERE client_id=$1 ORDER BY issued_at DESC`
	return r.queryReceipts(q, clientID)
}

func (r *receiptRepository) Delete(id int) error {
	const q = `DELETE FROM receipts WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

func (r *receiptRepository) queryReceipts(q string, args ...interface{}) ([]*models.Receipt, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var out []*models.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}
