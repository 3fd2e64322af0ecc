package services

import (
	"errors"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var ErrPortalNoClient = errors.New("no client record for this account")

// PortalService backs the read-only client portal. A portal login is
// matched to its CRM client record by email equality; everything the
// portal shows hangs off that client ID.
type PortalService struct {
	ClientRepo      repositories.ClientRepository
	ProposalRepo    repositories.ProposalRepository
	ContractRepo    repositories.ContractRepository
	ReservationRepo repositories.ReservationRepository
	ReceiptRepo     repositories.ReceiptRepository
	WarrantyRepo    repositories.WarrantyRepository
	TransferRepo    repositories.TransferRepository
	WithdrawalRepo  repositories.WithdrawalRepository
}

func NewPortalService(
	clientRepo repositories.ClientRepository,
	proposalRepo repositories.ProposalRepository,
	contractRepo repositories.ContractRepository,
	reservationRepo repositories.ReservationRepository,
	receiptRepo repositories.ReceiptRepository,
	warrantyRepo repositories.WarrantyRepository,
	transferRepo repositories.TransferRepository,
	withdrawalRepo repositories.WithdrawalRepository,
) *PortalService {
	return &PortalService{
		ClientRepo:      clientRepo,
		ProposalRepo:    proposalRepo,
		ContractRepo:    contractRepo,
		ReservationRepo: reservationRepo,
		ReceiptRepo:     receiptRepo,
		WarrantyRepo:    warrantyRepo,
		TransferRepo:    transferRepo,
		WithdrawalRepo:  withdrawalRepo,
	}
}

// ClientForEmail resolves the portal user's client record.
func (s *PortalService) ClientForEmail(email string) (*models.Client, error) {
	client, err := s.ClientRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrPortalNoClient
	}
	return client, nil
}

// PortalOverview is everything the portal home screen shows in one
// response.
type PortalOverview struct {
	Client       *models.Client                  `json:"client"`
	Proposals    []*models.Proposal              `json:"proposals"`
	Contracts    []*models.Contract              `json:"contracts"`
	Reservations []*models.Reservation           `json:"reservations"`
	Receipts     []*models.Receipt               `json:"receipts"`
	Warranties   []*models.Warranty              `json:"warranties"`
	Transfers    []*models.TransferAuthorization `json:"transfers"`
	Withdrawals  []*models.WithdrawalDeclaration `json:"withdrawals"`
}

func (s *PortalService) Overview(email string) (*PortalOverview, error) {
	client, err := s.ClientForEmail(email)
	if err != nil {
		return nil, err
	}
	ov := &PortalOverview{Client: client}

	if ov.Proposals, err = s.ProposalRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Contracts, err = s.ContractRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Reservations, err = s.ReservationRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Receipts, err = s.ReceiptRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Warranties, err = s.WarrantyRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Transfers, err = s.TransferRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	if ov.Withdrawals, err = s.WithdrawalRepo.ListByClient(client.ID); err != nil {
		return nil, err
	}
	return ov, nil
}

func (s *PortalService) Proposals(email string) ([]*models.Proposal, error) {
	client, err := s.ClientForEmail(email)
	if err != nil {
		return nil, err
	}
	return s.ProposalRepo.ListByClient(client.ID)
}

func (s *PortalService) Contracts(email string) ([]*models.Contract, error) {
	client, err := s.ClientForEmail(email)
	if err != nil {
		return nil, err
	}
	return s.ContractRepo.ListByClient(client.ID)
}

func (s *PortalService) Reservations(email string) ([]*models.Reservation, error) {
	client, err := s.ClientForEmail(email)
	if err != nil {
		return nil, err
	}
	return s.ReservationRepo.ListByClient(client.ID)
}

// OwnsContract reports whether the contract belongs to the portal
// user. Used before serving contract PDFs.
func (s *PortalService) OwnsContract(email string, contractID int) (bool, error) {
	client, err := s.ClientForEmail(email)
	if err != nil {
		return false, err
	}
	ct, err := s.ContractRepo.GetByID(contractID)
	if err != nil {
		return false, err
	}
	return ct != nil && ct.ClientID == client.ID, nil
}
