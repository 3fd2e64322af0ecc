package services

import (
	"errors"
	"strings"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/pdf"
	"autorevenda/internal/repositories"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentsService creates and renders the satellite legal documents:
// warranties, transfer authorizations (ATPV), withdrawal declarations
// and receipts. Contracts have their own service.
type DocumentsService struct {
	WarrantyRepo   repositories.WarrantyRepository
	TransferRepo   repositories.TransferRepository
	WithdrawalRepo repositories.WithdrawalRepository
	ReceiptRepo    repositories.ReceiptRepository
	ClientRepo     repositories.ClientRepository
	VehicleRepo    repositories.VehicleRepository
	Numbering      *NumberingService
	PDFGen         pdf.Generator
}

func NewDocumentsService(
	warrantyRepo repositories.WarrantyRepository,
	transferRepo repositories.TransferRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	receiptRepo repositories.ReceiptRepository,
	clientRepo repositories.ClientRepository,
	vehicleRepo repositories.VehicleRepository,
	numbering *NumberingService,
	pdfGen pdf.Generator,
) *DocumentsService {
	return &DocumentsService{
		WarrantyRepo:   warrantyRepo,
		TransferRepo:   transferRepo,
		WithdrawalRepo: withdrawalRepo,
		ReceiptRepo:    receiptRepo,
		ClientRepo:     clientRepo,
		VehicleRepo:    vehicleRepo,
		Numbering:      numbering,
		PDFGen:         pdfGen,
	}
}

func (s *DocumentsService) resolveParties(clientID, vehicleID int) (*models.Client, *models.Vehicle, error) {
	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, nil, ErrClientNotFound
	}
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, nil, err
	}
	if vehicle == nil {
		return nil, nil, ErrVehicleNotFound
	}
	return client, vehicle, nil
}

// ===== garantia =====

func (s *DocumentsService) CreateWarranty(w *models.Warranty) (*models.Warranty, error) {
	if _, _, err := s.resolveParties(w.ClientID, w.VehicleID); err != nil {
		return nil, err
	}
	if w.WarrantyNumber == "" {
		w.WarrantyNumber = s.Numbering.Next(PrefixGarantia)
	}
	if w.CoverageMonths <= 0 {
		w.CoverageMonths = 3 // garantia legal mínima
	}
	if w.StartDate.IsZero() {
		w.StartDate = time.Now()
	}
	w.CreatedAt = time.Now()
	id, err := s.WarrantyRepo.Create(w)
	if err != nil {
		return nil, err
	}
	w.ID = int(id)
	return w, nil
}

func (s *DocumentsService) WarrantyPDF(id int) (string, error) {
	w, err := s.WarrantyRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if w == nil {
		return "", ErrDocumentNotFound
	}
	client, vehicle, err := s.resolveParties(w.ClientID, w.VehicleID)
	if err != nil {
		return "", err
	}
	return s.PDFGen.GenerateWarranty(pdf.WarrantyData{
		WarrantyNumber: w.WarrantyNumber,
		CreatedAt:      w.CreatedAt,
		Client:         partyFromClient(client),
		Vehicle:        vehicleData(vehicle),
		CoverageMonths: w.CoverageMonths,
		CoverageKM:     w.CoverageKM,
		CoverageTerms:  w.CoverageTerms,
		StartDate:      w.StartDate,
	})
}

// ===== ATPV =====

func (s *DocumentsService) CreateTransfer(t *models.TransferAuthorization) (*models.TransferAuthorization, error) {
	_, vehicle, err := s.resolveParties(t.ClientID, t.VehicleID)
	if err != nil {
		return nil, err
	}
	if t.AuthorizationNumber == "" {
		t.AuthorizationNumber = s.Numbering.Next(PrefixTransferencia)
	}
	if t.VehicleValue == 0 {
		t.VehicleValue = vehicle.Price
	}
	t.IssuedAt = time.Now()
	id, err := s.TransferRepo.Create(t)
	if err != nil {
		return nil, err
	}
	t.ID = int(id)
	return t, nil
}

func (s *DocumentsService) TransferPDF(id int) (string, error) {
	t, err := s.TransferRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", ErrDocumentNotFound
	}
	client, vehicle, err := s.resolveParties(t.ClientID, t.VehicleID)
	if err != nil {
		return "", err
	}
	return s.PDFGen.GenerateTransfer(pdf.TransferData{
		AuthorizationNumber: t.AuthorizationNumber,
		CreatedAt:           t.IssuedAt,
		Client:              partyFromClient(client),
		Vehicle:             vehicleData(vehicle),
		VehicleValue:        t.VehicleValue,
		Location:            t.Location,
	})
}

// ===== desistência =====

func (s *DocumentsService) CreateWithdrawal(w *models.WithdrawalDeclaration) (*models.WithdrawalDeclaration, error) {
	if _, _, err := s.resolveParties(w.ClientID, w.VehicleID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(w.Reason) == "" {
		w.Reason = "desistência voluntária"
	}
	if w.DeclarationNumber == "" {
		w.DeclarationNumber = s.Numbering.Next(PrefixDesistencia)
	}
	w.IssuedAt = time.Now()
	id, err := s.WithdrawalRepo.Create(w)
	if err != nil {
		return nil, err
	}
	w.ID = int(id)
	return w, nil
}

func (s *DocumentsService) WithdrawalPDF(id int) (string, error) {
	w, err := s.WithdrawalRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if w == nil {
		return "", ErrDocumentNotFound
	}
	client, vehicle, err := s.resolveParties(w.ClientID, w.VehicleID)
	if err != nil {
		return "", err
	}
	return s.PDFGen.GenerateWithdrawal(pdf.WithdrawalData{
		DeclarationNumber: w.DeclarationNumber,
		CreatedAt:         w.IssuedAt,
		Client:            partyFromClient(client),
		Vehicle:           vehicleData(vehicle),
		Reason:            w.Reason,
	})
}

// ===== recibo =====

func (s *DocumentsService) CreateReceipt(rc *models.Receipt) (*models.Receipt, error) {
	if rc.ClientID != nil {
		client, err := s.ClientRepo.GetByID(*rc.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, ErrClientNotFound
		}
		if rc.PayerName == "" {
			rc.PayerName = client.Name
		}
		if rc.PayerCPF == "" {
			rc.PayerCPF = client.CPF
		}
	}
	if rc.ReceiptNumber == "" {
		rc.ReceiptNumber = s.Numbering.Next(PrefixRecibo)
	}
	rc.IssuedAt = time.Now()
	id, err := s.ReceiptRepo.Create(rc)
	if err != nil {
		return nil, err
	}
	rc.ID = int(id)
	return rc, nil
}

func (s *DocumentsService) ReceiptPDF(id int) (string, error) {
	rc, err := s.ReceiptRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if rc == nil {
		return "", ErrDocumentNotFound
	}
	return s.PDFGen.GenerateReceipt(pdf.ReceiptData{
		ReceiptNumber: rc.ReceiptNumber,
		CreatedAt:     rc.IssuedAt,
		Payer:         pdf.PartyData{Name: rc.PayerName, CPF: rc.PayerCPF},
		Amount:        rc.Amount,
		PaymentMethod: rc.PaymentMethod,
		Reference:     rc.Reference,
	})
}

// ===== listagens =====

func (s *DocumentsService) ListWarranties(limit, offset int) ([]*models.Warranty, error) {
	return s.WarrantyRepo.List(limit, offset)
}

func (s *DocumentsService) ListTransfers(limit, offset int) ([]*models.TransferAuthorization, error) {
	return s.TransferRepo.List(limit, offset)
}

func (s *DocumentsService) ListWithdrawals(limit, offset int) ([]*models.WithdrawalDeclaration, error) {
	return s.WithdrawalRepo.List(limit, offset)
}

func (s *DocumentsService) ListReceipts(limit, offset int) ([]*models.Receipt, error) {
	return s.ReceiptRepo.List(limit, offset)
}
