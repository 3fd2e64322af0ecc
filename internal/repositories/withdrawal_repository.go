package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type WithdrawalRepository interface {
	Create(w *models.WithdrawalDeclaration) (int64, error)
	GetByID(id int) (*models.WithdrawalDeclaration, error)
	List(limit, offset int) ([]*models.WithdrawalDeclaration, error)
	ListByClient(clientID int) ([]*models.WithdrawalDeclaration, error)
	Delete(id int) error
}

type withdrawalRepository struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

const withdrawalColumns = `id, declaration_number, client_id, vehicle_id, reason, issued_at`

func scanWithdrawal(row interface{ Scan(...interface{}) error }) (*models.WithdrawalDeclaration, error) {
	var w models.WithdrawalDeclaration
	err := row.Scan(&w.ID, &w.DeclarationNumber, &w.ClientID, &w.VehicleID, &w.Reason, &w.IssuedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepository) Create(w *models.WithdrawalDeclaration) (int64, error) {
	const q = `
                INSERT INTO withdrawal_declarations (declaration_number, client_id, vehicle_id, reason, issued_at)
                VALUES ($1, $2, $3, $4, $5)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, w.DeclarationNumber, w.ClientID, w.VehicleID, w.Reason, w.IssuedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create withdrawal declaration: %w", err)
	}
	return id, nil
}

func (r *withdrawalRepository) GetByID(id int) (*models.WithdrawalDeclaration, error) {
	q := `SELECT ` + withdrawalColumns + ` FROM withdrawal_declarations WHERE id=$1`
	w, err := scanWithdrawal(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get withdrawal declaration: %w", err)
	}
	return w, nil
}

func (r *withdrawalRepository) List(limit, offset int) ([]*models.WithdrawalDeclaration, error) {
	q := `SELECT ` + withdrawalColumns + ` FROM withdrawal_declarations ORDER BY issued_at DESC LIMIT $1 OFFSET $2`
	return r.queryWithdrawals(q, limit, offset)
}

func (r *withdrawalRepository) ListByClient(clientID int) ([]*models.WithdrawalDeclaration, error) {
	q := `SELECT ` + withdrawalColumns + ` FROM withdrawal_declarations WHERE client_id=$1 ORDER BY issued_at DESC`
	return r.queryWithdrawals(q, clientID)
}

func (r *withdrawalRepository) Delete(id int) error {
	const q = `DELETE FROM withdrawal_declarations WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete withdrawal declaration: %w", err)
	}
	return nil
}

func (r *withdrawalRepository) queryWithdrawals(q string, args ...interface{}) ([]*models.WithdrawalDeclaration, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawal declarations: %w", err)
	}
	defer rows.Close()

	var out []*models.WithdrawalDeclaration
	for rows.Next() {
		w, err := scanWithdrawal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
