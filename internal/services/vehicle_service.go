package services

import (
	"errors"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var ErrVehicleInUse = errors.New("vehicle has an active reservation")

type VehicleService struct {
	Repo            repositories.VehicleRepository
	ReservationRepo repositories.ReservationRepository
}

func NewVehicleService(repo repositories.VehicleRepository, reservationRepo repositories.ReservationRepository) *VehicleService {
	return &VehicleService{Repo: repo, ReservationRepo: reservationRepo}
}

func (s *VehicleService) Create(v *models.Vehicle) (*models.Vehicle, error) {
	if v.Status == "" {
		v.Status = models.VehicleDisponivel
	}
	if !models.ValidVehicleStatus(v.Status) {
		return nil, ErrInvalidStatus
	}
	v.CreatedAt = time.Now()
	id, err := s.Repo.Create(v)
	if err != nil {
		return nil, err
	}
	v.ID = int(id)
	return v, nil
}

func (s *VehicleService) GetByID(id int) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

func (s *VehicleService) Update(v *models.Vehicle) error {
	if !models.ValidVehicleStatus(v.Status) {
		return ErrInvalidStatus
	}
	return s.Repo.Update(v)
}

func (s *VehicleService) List(limit, offset int) ([]*models.Vehicle, error) {
	return s.Repo.List(limit, offset)
}

func (s *VehicleService) ListByStatus(status models.VehicleStatus, limit, offset int) ([]*models.Vehicle, error) {
	if !models.ValidVehicleStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.Repo.ListByStatus(status, limit, offset)
}

// Delete refuses to remove a vehicle that still has an active
// reservation.
func (s *VehicleService) Delete(id int) error {
	res, err := s.ReservationRepo.GetActiveByVehicle(id)
	if err != nil {
		return err
	}
	if res != nil {
		return ErrVehicleInUse
	}
	return s.Repo.Delete(id)
}
