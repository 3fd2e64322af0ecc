package services

import (
	"errors"
	"strings"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var (
	ErrBankNotFound      = errors.New("bank not found")
	ErrInvalidBank       = errors.New("bank name is required")
	ErrInvalidCommission = errors.New("commission rate must be between 0 and 100")
)

type BankService struct {
	Repo repositories.BankRepository
}

func NewBankService(repo repositories.BankRepository) *BankService {
	return &BankService{Repo: repo}
}

func validateBank(b *models.Bank) error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrInvalidBank
	}
	if b.CommissionRate < 0 || b.CommissionRate > 100 {
		return ErrInvalidCommission
	}
	return nil
}

func (s *BankService) Create(b *models.Bank) (*models.Bank, error) {
	if err := validateBank(b); err != nil {
		return nil, err
	}
	b.Active = true
	id, err := s.Repo.Create(b)
	if err != nil {
		return nil, err
	}
	b.ID = int(id)
	return b, nil
}

func (s *BankService) GetByID(id int) (*models.Bank, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBankNotFound
	}
	return b, nil
}

func (s *BankService) Update(b *models.Bank) error {
	if err := validateBank(b); err != nil {
		return err
	}
	return s.Repo.Update(b)
}

func (s *BankService) List() ([]*models.Bank, error) {
	return s.Repo.List()
}

func (s *BankService) Delete(id int) error {
	return s.Repo.Delete(id)
}
