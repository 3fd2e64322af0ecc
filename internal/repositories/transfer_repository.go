package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type TransferRepository interface {
	Create(t *models.TransferAuthorization) (int64, error)
	GetByID(id int) (*models.TransferAuthorization, error)
	List(limit, offset int) ([]*models.TransferAuthorization, error)
	ListByClient(clientID int) ([]*models.TransferAuthorization, error)
	Delete(id int) error
}

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, authorization_number, client_id, vehicle_id, contract_id, vehicle_value, location, issued_at`

func scanTransfer(row interface{ Scan(...interface{}) error }) (*models.TransferAuthorization, error) {
	var t models.TransferAuthorization
	err := row.Scan(&t.ID, &t.AuthorizationNumber, &t.ClientID, &t.VehicleID, &t.ContractID,
		&t.VehicleValue, &t.Location, &t.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transferRepository) Create(t *models.TransferAuthorization) (int64, error) {
	const q = `
                INSERT INTO transfer_authorizations (authorization_number, client_id, vehicle_id, contract_id, vehicle_value, location, issued_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, t.AuthorizationNumber, t.ClientID, t.VehicleID, t.ContractID,
		t.VehicleValue, t.Location, t.IssuedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create transfer authorization: %w", err)
	}
	return id, nil
}

func (r *transferRepository) GetByID(id int) (*models.TransferAuthorization, error) {
	q := `SELECT ` + transferColumns + ` FROM transfer_authorizations WHERE id=$1`
	t, err := scanTransfer(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer authorization: %w", err)
	}
	return t, nil
}

func (r *transferRepository) List(limit, offset int) ([]*models.TransferAuthorization, error) {
	q := `SELECT ` + transferColumns + ` FROM transfer_authorizations ORDER BY issued_at DESC LIMIT $1 OFFSET $2`
	return r.queryTransfers(q, limit, offset)
}

func (r *transferRepository) ListByClient(clientID int) ([]*models.TransferAuthorization, error) {
	q := `SELECT ` + transferColumns + ` FROM transfer_authorizations WHERE client_id=$1 ORDER BY issued_at DESC`
	return r.queryTransfers(q, clientID)
}

func (r *transferRepository) Delete(id int) error {
	const q = `DELETE FROM transfer_authorizations WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete transfer authorization: %w", err)
	}
	return nil
}

func (r *transferRepository) queryTransfers(q string, args ...interface{}) ([]*models.TransferAuthorization, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfer authorizations: %w", err)
	}
	defer rows.Close()

	var out []*models.TransferAuthorization
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
