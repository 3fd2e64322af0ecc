package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"autorevenda/internal/models"
)

type VehicleRepository interface {
	Create(v *models.Vehicle) (int64, error)
	Update(v *models.Vehicle) error
	UpdateStatus(id int, status models.VehicleStatus) error
	GetByID(id int) (*models.Vehicle, error)
	List(limit, offset int) ([]*models.Vehicle, error)
	ListByStatus(status models.VehicleStatus, limit, offset int) ([]*models.Vehicle, error)
	Delete(id int) error
}

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, brand, model, model_year, manufacture_year, color, plate, chassis, renavam, mileage, price, status, created_at, updated_at`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.ModelYear, &v.ManufactureYear, &v.Color,
		&v.Plate, &v.Chassis, &v.Renavam, &v.Mileage, &v.Price, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepository) Create(v *models.Vehicle) (int64, error) {
	const q = `
                INSERT INTO vehicles (brand, model, model_year, manufacture_year, color, plate, chassis, renavam, mileage, price, status, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q, v.Brand, v.Model, v.ModelYear, v.ManufactureYear, v.Color,
		v.Plate, v.Chassis, v.Renavam, v.Mileage, v.Price, v.Status, v.CreatedAt, v.UpdatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("create vehicle: %w", err)
	}
	return id, nil
}

func (r *vehicleRepository) Update(v *models.Vehicle) error {
	const q = `
                UPDATE vehicles
                SET brand=$1, model=$2, model_year=$3, manufacture_year=$4, color=$5, plate=$6,
                    chassis=$7, renavam=$8, mileage=$9, price=$10, status=$11, updated_at=$12
                WHERE id=$13
        `
	if _, err := r.db.Exec(q, v.Brand, v.Model, v.ModelYear, v.ManufactureYear, v.Color, v.Plate,
		v.Chassis, v.Renavam, v.Mileage, v.Price, v.Status, time.Now(), v.ID); err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepository) UpdateStatus(id int, status models.VehicleStatus) error {
	const q = `UPDATE vehicles SET status=$1, updated_at=$2 WHERE id=$3`
	if _, err := r.db.Exec(q, status, time.Now(), id); err != nil {
		return fmt.Errorf("update vehicle status: %w", err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(id int) (*models.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id=$1`
	v, err := scanVehicle(r.db.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

func (r *vehicleRepository) List(limit, offset int) ([]*models.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryVehicles(q, limit, offset)
}

func (r *vehicleRepository) ListByStatus(status models.VehicleStatus, limit, offset int) ([]*models.Vehicle, error) {
	q := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryVehicles(q, status, limit, offset)
}

func (r *vehicleRepository) Delete(id int) error {
	const q = `DELETE FROM vehicles WHERE id=$1`
	if _, err := r.db.Exec(q, id); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepository) queryVehicles(q string, args ...interface{}) ([]*models.Vehicle, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}
