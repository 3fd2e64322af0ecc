package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"autorevenda/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client) (int64, error)
	Update(client *models.Client) error
	UpdateStage(id int, stage models.FunnelStage, updatedAt time.Time) error
	GetByID(id int) (*models.Client, error)
	GetByEmail(email string) (*models.Client, error)
	List(limit, offset int) ([]*models.Client, error)
	ListBySeller(sellerID, limit, offset int) ([]*models.Client, error)
	ListAll() ([]*models.Client, error)
	FindByName(name string) ([]*models.Client, error)
	Delete(id int) error
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, name, cpf, rg, email, phone, address, funnel_stage, seller_id, created_at, updated_at`

func scanClient(row interface{ Scan(...interface{}) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.CPF, &c.RG, &c.Email, &c.Phone, &c.Address,
		&c.FunnelStage, &c.SellerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(client *models.Client) (int64, error) {
	const q = `
                INSERT INTO clients (name, cpf, rg, email, phone, address, funnel_stage, seller_id, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, client.Name, client.CPF, client.RG, client.Email, client.Phone,
		client.Address, client.FunnelStage, client.SellerID, client.CreatedAt, client.UpdatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	return id, nil
}

func (r *clientRepository) Update(client *models.Client) error {
	const q = `
                UPDATE clients
                SET name=$1, cpf=$2, rg=$3, email=$4, phone=$5, address=$6, funnel_stage=$7, seller_id=$8, updated_at=$9
                WHERE id=$10
        `
	if _, err := r.db.Exec(q, client.Name, client.CPF, client.RG, client.Email, client.Phone,
		client.Address, client.FunnelStage, client.SellerID, client.UpdatedAt, client.ID); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *clientRepository) UpdateStage(id int, stage models.FunnelStage, updatedAt time.Time) error {
	const q = `UPDATE clients SET funnel_stage=$1, updated_at=$2 WHERE id=$3`
	if _, err := r.db.Exec(q, stage, updatedAt, id); err != nil {
		return fmt.Errorf("update client stage: %w", err)
	}
	return nil
}

func (r *clientRepository) GetByID(id int) (*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	c, err := scanClient(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *clientRepository) GetByEmail(email string) (*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE LOWER(email)=LOWER($1)`
	c, err := scanClient(r.db.QueryRow(q, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return c, nil
}

func (r *clientRepository) List(limit, offset int) ([]*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryClients(q, limit, offset)
}

func (r *clientRepository) ListBySeller(sellerID, limit, offset int) ([]*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE seller_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryClients(q, sellerID, limit, offset)
}

func (r *clientRepository) ListAll() ([]*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients ORDER BY updated_at DESC`
	return r.queryClients(q)
}

func (r *clientRepository) FindByName(name string) ([]*models.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE LOWER(name) LIKE $1 ORDER BY created_at DESC`
	return r.queryClients(q, "%"+strings.ToLower(name)+"%")
}

func (r *clientRepository) Delete(id int) error {
	const q = `DELETE FROM clients WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *clientRepository) queryClients(q string, args ...interface{}) ([]*models.Client, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
