package services

import (
	"errors"
	"fmt"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/pdf"
	"autorevenda/internal/repositories"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrInvalidPaymentType    = errors.New("invalid payment type")
	ErrMissingParceladoTerms = errors.New("parcelado contract requires down payment, installments, installment value, due day and first due date")
	ErrContractExists        = errors.New("contract already exists for this proposal")
)

type ContractService struct {
	Repo         repositories.ContractRepository
	ProposalRepo repositories.ProposalRepository
	ClientRepo   repositories.ClientRepository
	VehicleRepo  repositories.VehicleRepository
	Numbering    *NumberingService
	PDFGen       pdf.Generator
}

func NewContractService(
	repo repositories.ContractRepository,
	proposalRepo repositories.ProposalRepository,
	clientRepo repositories.ClientRepository,
	vehicleRepo repositories.VehicleRepository,
	numbering *NumberingService,
	pdfGen pdf.Generator,
) *ContractService {
	return &ContractService{
		Repo:         repo,
		ProposalRepo: proposalRepo,
		ClientRepo:   clientRepo,
		VehicleRepo:  vehicleRepo,
		Numbering:    numbering,
		PDFGen:       pdfGen,
	}
}

// validateTerms enforces the payment-type branching: parcelado needs the
// full installment plan, avista must not be rejected for lacking it.
func validateTerms(ct *models.Contract) error {
	switch ct.PaymentType {
	case models.PagamentoAVista:
		return nil
	case models.PagamentoParcelado:
		if ct.DownPayment == nil || ct.InstallmentValue == nil || ct.FirstDueDate == nil {
			return ErrMissingParceladoTerms
		}
		if ct.Installments == nil || *ct.Installments < 1 {
			return ErrMissingParceladoTerms
		}
		if ct.DueDay == nil || *ct.DueDay < 1 || *ct.DueDay > 31 {
			return ErrMissingParceladoTerms
		}
		return nil
	default:
		return ErrInvalidPaymentType
	}
}

// Create persists a contract. When ProposalID is set, the source
// proposal must be aprovada — this is hard policy here, not a UI
// convention — and the contract inherits client/vehicle from it.
func (s *ContractService) Create(ct *models.Contract) (*models.Contract, error) {
	if ct.ProposalID != nil {
		p, err := s.ProposalRepo.GetByID(*ct.ProposalID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProposalNotFound
		}
		if p.Status != models.ProposalAprovada {
			return nil, ErrProposalNotApproved
		}
		existing, err := s.Repo.GetByProposalID(p.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrContractExists
		}
		ct.ClientID = p.ClientID
		ct.VehicleID = p.VehicleID
		if ct.TotalValue == 0 {
			ct.TotalValue = p.VehicleValue
		}
	}

	if err := validateTerms(ct); err != nil {
		return nil, err
	}

	if ct.ContractNumber == "" {
		ct.ContractNumber = s.Numbering.Next(PrefixContrato)
	}
	ct.CreatedAt = time.Now()

	id, err := s.Repo.Create(ct)
	if err != nil {
		return nil, err
	}
	ct.ID = int(id)
	return ct, nil
}

func (s *ContractService) GetByID(id int) (*models.Contract, error) {
	return s.Repo.GetByID(id)
}

func (s *ContractService) List(limit, offset int) ([]*models.Contract, error) {
	return s.Repo.List(limit, offset)
}

func (s *ContractService) Delete(id int) error {
	return s.Repo.Delete(id)
}

// GeneratePDF resolves the joined data and renders the printable
// contract, returning the served file path.
func (s *ContractService) GeneratePDF(id int) (string, error) {
	ct, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if ct == nil {
		return "", ErrContractNotFound
	}
	client, err := s.ClientRepo.GetByID(ct.ClientID)
	if err != nil || client == nil {
		return "", ErrClientNotFound
	}
	vehicle, err := s.VehicleRepo.GetByID(ct.VehicleID)
	if err != nil || vehicle == nil {
		return "", ErrVehicleNotFound
	}

	data := pdf.ContractData{
		ContractNumber: ct.ContractNumber,
		CreatedAt:      ct.CreatedAt,
		Client:         partyFromClient(client),
		Vehicle:        vehicleData(vehicle),
		TotalValue:     ct.TotalValue,
		PaymentType:    string(ct.PaymentType),
		Signatures: pdf.SignatureData{
			ClientImagePath: ct.ClientSignaturePath,
			VendorImagePath: ct.VendorSignaturePath,
		},
	}
	if ct.PaymentType == models.PagamentoParcelado {
		data.DownPayment = deref(ct.DownPayment)
		data.Installments = derefInt(ct.Installments)
		data.InstallmentValue = deref(ct.InstallmentValue)
		data.DueDay = derefInt(ct.DueDay)
		if ct.FirstDueDate != nil {
			data.FirstDueDate = *ct.FirstDueDate
		}
	}
	return s.PDFGen.GenerateContract(data)
}

// MarkSigned stamps the contract as signed (used by the SMS
// confirmation flow).
func (s *ContractService) MarkSigned(id int) error {
	ct, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if ct == nil {
		return ErrContractNotFound
	}
	if ct.Signed {
		return nil
	}
	if err := s.Repo.MarkSigned(id, time.Now()); err != nil {
		return fmt.Errorf("sign contract: %w", err)
	}
	return nil
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
