package repositories

import (
	"database/sql"
	"fmt"

	"autorevenda/internal/models"
)

type ReservationRepository interface {
	Create(res *models.Reservation) (int64, error)
	GetByID(id int) (*models.Reservation, error)
	GetActiveByVehicle(vehicleID int) (*models.Reservation, error)
	List(limit, offset int) ([]*models.Reservation, error)
	ListByClient(clientID int) ([]*models.Reservation, error)
	UpdateStatus(id int, status models.ReservationStatus) error
	Delete(id int) error
}

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, reservation_number, client_id, vehicle_id, deposit_amount, reservation_date, valid_until, status, created_at`

func scanReservation(row interface{ Scan(...interface{}) error }) (*models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(&res.ID, &res.ReservationNumber, &res.ClientID, &res.VehicleID,
		&res.DepositAmount, &res.ReservationDate, &res.ValidUntil, &res.Status, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(res *models.Reservation) (int64, error) {
	const q = `
                INSERT INTO reservations (reservation_number, client_id, vehicle_id, deposit_amount, reservation_date, valid_until, status, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, res.ReservationNumber, res.ClientID, res.VehicleID,
		res.DepositAmount, res.ReservationDate, res.ValidUntil, res.Status, res.CreatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create reservation: %w", err)
	}
	return id, nil
}

func (r *reservationRepository) GetByID(id int) (*models.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE id=$1`
	res, err := scanReservation(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

func (r *reservationRepository) GetActiveByVehicle(vehicleID int) (*models.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE vehicle_id=$1 AND status='ativa' ORDER BY created_at DESC LIMIT 1`
	res, err := scanReservation(r.db.QueryRow(q, vehicleID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get active reservation: %w", err)
	}
	return res, nil
}

func (r *reservationRepository) List(limit, offset int) ([]*models.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryReservations(q, limit, offset)
}

func (r *reservationRepository) ListByClient(clientID int) ([]*models.Reservation, error) {
	q := `SELECT ` + reservationColumns + ` FROM reservations WHERE client_id=$1 ORDER BY created_at DESC`
	return r.queryReservations(q, clientID)
}

func (r *reservationRepository) UpdateStatus(id int, status models.ReservationStatus) error {
	const q = `UPDATE reservations SET status=$1 WHERE id=$2`
	if _, err := r.db.Exec(q, status, id); err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	return nil
}

func (r *reservationRepository) Delete(id int) error {
	const q = `DELETE FROM reservations WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) queryReservations(q string, args ...interface{}) ([]*models.Reservation, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*models.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
