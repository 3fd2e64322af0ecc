package services

import (
	"errors"
	"log"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var ErrSaleExists = errors.New("sale already exists for this proposal")

type SaleService struct {
	Repo            repositories.SaleRepository
	ProposalRepo    repositories.ProposalRepository
	ClientRepo      repositories.ClientRepository
	VehicleRepo     repositories.VehicleRepository
	BankRepo        repositories.BankRepository
	ReservationRepo repositories.ReservationRepository
	Notifier        Notifier
}

func NewSaleService(
	repo repositories.SaleRepository,
	proposalRepo repositories.ProposalRepository,
	clientRepo repositories.ClientRepository,
	vehicleRepo repositories.VehicleRepository,
	bankRepo repositories.BankRepository,
	reservationRepo repositories.ReservationRepository,
	notifier Notifier,
) *SaleService {
	return &SaleService{
		Repo:            repo,
		ProposalRepo:    proposalRepo,
		ClientRepo:      clientRepo,
		VehicleRepo:     vehicleRepo,
		BankRepo:        bankRepo,
		ReservationRepo: reservationRepo,
		Notifier:        notifier,
	}
}

// CloseFromProposal finalizes a sale from an approved proposal:
// commission comes from the bank's rate (zero on cash deals), the
// vehicle flips to vendido, the client moves to vendido, and an active
// reservation for the vehicle is converted. Only the sale insert is
// fatal; the follow-up status writes are logged when they fail.
func (s *SaleService) CloseFromProposal(proposalID, sellerID int) (*models.Sale, error) {
	p, err := s.ProposalRepo.GetByID(proposalID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProposalNotFound
	}
	if p.Status != models.ProposalAprovada {
		return nil, ErrProposalNotApproved
	}

	// idempotência: one sale per proposal
	existing, err := s.Repo.GetByProposalID(proposalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSaleExists
	}

	total := p.VehicleValue
	commission := 0.0
	if p.BankID != nil {
		bank, err := s.BankRepo.GetByID(*p.BankID)
		if err != nil {
			return nil, err
		}
		if bank != nil {
			commission = total * bank.CommissionRate / 100
		}
	}

	sale := &models.Sale{
		ProposalID:      p.ID,
		ClientID:        p.ClientID,
		VehicleID:       p.VehicleID,
		SellerID:        sellerID,
		TotalValue:      total,
		CommissionValue: commission,
		ClosedAt:        time.Now(),
	}
	id, err := s.Repo.Create(sale)
	if err != nil {
		return nil, err
	}
	sale.ID = int(id)

	if err := s.VehicleRepo.UpdateStatus(p.VehicleID, models.VehicleVendido); err != nil {
		log.Printf("[sale][close] vehicle %d not marked vendido: %v", p.VehicleID, err)
	}
	if err := s.ClientRepo.UpdateStage(p.ClientID, models.StageVendido, time.Now()); err != nil {
		log.Printf("[sale][close] client %d not moved to vendido: %v", p.ClientID, err)
	}
	if res, err := s.ReservationRepo.GetActiveByVehicle(p.VehicleID); err == nil && res != nil {
		if err := s.ReservationRepo.UpdateStatus(res.ID, models.ReservaConvertida); err != nil {
			log.Printf("[sale][close] reservation %d not converted: %v", res.ID, err)
		}
	}

	if s.Notifier != nil {
		s.Notifier.SaleClosed(sale)
	}
	return sale, nil
}

func (s *SaleService) GetByID(id int) (*models.Sale, error) {
	return s.Repo.GetByID(id)
}

func (s *SaleService) List(limit, offset int) ([]*models.Sale, error) {
	return s.Repo.List(limit, offset)
}

func (s *SaleService) ListMy(sellerID, limit, offset int) ([]*models.Sale, error) {
	return s.Repo.ListBySeller(sellerID, limit, offset)
}
