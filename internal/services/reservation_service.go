package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/pdf"
	"autorevenda/internal/repositories"
)

// ReservationValidity is the default hold window.
const ReservationValidity = 10 * 24 * time.Hour

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrVehicleUnavailable  = errors.New("vehicle is not available")
	ErrReservationClosed   = errors.New("reservation already closed")
)

type ReservationService struct {
	Repo        repositories.ReservationRepository
	VehicleRepo repositories.VehicleRepository
	ClientRepo  repositories.ClientRepository
	Numbering   *NumberingService
	PDFGen      pdf.Generator
	Emails      EmailService // optional

	now func() time.Time
}

func NewReservationService(
	repo repositories.ReservationRepository,
	vehicleRepo repositories.VehicleRepository,
	clientRepo repositories.ClientRepository,
	numbering *NumberingService,
	pdfGen pdf.Generator,
) *ReservationService {
	return &ReservationService{
		Repo:        repo,
		VehicleRepo: vehicleRepo,
		ClientRepo:  clientRepo,
		Numbering:   numbering,
		PDFGen:      pdfGen,
		now:         time.Now,
	}
}

// Create places the hold: reservation_date = today, valid_until = today
// + 10 days, status ativa, and the vehicle flips to reservado as part of
// the same logical action. The two writes are separate round trips; if
// the vehicle update fails we best-effort delete the fresh reservation
// row rather than leave an ativa hold over a disponivel vehicle. The
// rollback itself can still fail — that residue is logged.
func (s *ReservationService) Create(clientID, vehicleID int, depositAmount float64) (*models.Reservation, error) {
	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	if vehicle.Status != models.VehicleDisponivel {
		return nil, ErrVehicleUnavailable
	}

	today := s.now()
	res := &models.Reservation{
		ReservationNumber: s.Numbering.Next(PrefixReserva),
		ClientID:          clientID,
		VehicleID:         vehicleID,
		DepositAmount:     depositAmount,
		ReservationDate:   today,
		ValidUntil:        today.Add(ReservationValidity),
		Status:            models.ReservaAtiva,
		CreatedAt:         today,
	}

	id, err := s.Repo.Create(res)
	if err != nil {
		return nil, err
	}
	res.ID = int(id)

	if err := s.VehicleRepo.UpdateStatus(vehicleID, models.VehicleReservado); err != nil {
		if delErr := s.Repo.Delete(res.ID); delErr != nil {
			log.Printf("[reservation][create] rollback failed, reservation %d left ativa over disponivel vehicle %d: %v",
				res.ID, vehicleID, delErr)
		}
		return nil, fmt.Errorf("reserve vehicle: %w", err)
	}

	if s.Emails != nil && client.Email != "" {
		label := fmt.Sprintf("%s %s %d", vehicle.Brand, vehicle.Model, vehicle.ModelYear)
		if err := s.Emails.SendReservationEmail(client.Email, client.Name, label, res.ValidUntil.Format("02/01/2006")); err != nil {
			log.Printf("[reservation][create] confirmation email failed for %s: %v", client.Email, err)
		}
	}
	return res, nil
}

// Cancel releases the hold and frees the vehicle.
func (s *ReservationService) Cancel(id int) error {
	return s.close(id, models.ReservaCancelada, models.VehicleDisponivel)
}

// Convert marks the reservation as turned into a sale.
func (s *ReservationService) Convert(id int) error {
	return s.close(id, models.ReservaConvertida, models.VehicleVendido)
}

func (s *ReservationService) close(id int, status models.ReservationStatus, vehicleStatus models.VehicleStatus) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if res == nil {
		return ErrReservationNotFound
	}
	if res.Status != models.ReservaAtiva {
		return ErrReservationClosed
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return err
	}
	if err := s.VehicleRepo.UpdateStatus(res.VehicleID, vehicleStatus); err != nil {
		// reservation row already closed; surface the half-done state
		return fmt.Errorf("reservation closed, vehicle status not updated: %w", err)
	}
	return nil
}

func (s *ReservationService) GetByID(id int) (*models.Reservation, error) {
	return s.Repo.GetByID(id)
}

func (s *ReservationService) List(limit, offset int) ([]*models.Reservation, error) {
	return s.Repo.List(limit, offset)
}

// GeneratePDF renders the reservation term for download.
func (s *ReservationService) GeneratePDF(id int) (string, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if res == nil {
		return "", ErrReservationNotFound
	}
	client, err := s.ClientRepo.GetByID(res.ClientID)
	if err != nil || client == nil {
		return "", ErrClientNotFound
	}
	vehicle, err := s.VehicleRepo.GetByID(res.VehicleID)
	if err != nil || vehicle == nil {
		return "", ErrVehicleNotFound
	}
	return s.PDFGen.GenerateReservation(pdf.ReservationData{
		ReservationNumber: res.ReservationNumber,
		CreatedAt:         res.CreatedAt,
		Client:            partyFromClient(client),
		Vehicle:           vehicleData(vehicle),
		DepositAmount:     res.DepositAmount,
		ReservationDate:   res.ReservationDate,
		ValidUntil:        res.ValidUntil,
	})
}

// shared model→layout mappers

func partyFromClient(c *models.Client) pdf.PartyData {
	return pdf.PartyData{
		Name:    c.Name,
		CPF:     c.CPF,
		RG:      c.RG,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

func vehicleData(v *models.Vehicle) pdf.VehicleData {
	return pdf.VehicleData{
		Brand:   v.Brand,
		Model:   v.Model,
		Year:    v.ModelYear,
		Color:   v.Color,
		Plate:   v.Plate,
		Chassis: v.Chassis,
		Renavam: v.Renavam,
	}
}
