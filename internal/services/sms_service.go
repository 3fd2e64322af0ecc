package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
	"autorevenda/internal/utils"
)

var (
	ErrResendThrottled = errors.New("resend throttled")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrCodeExpired     = errors.New("code expired")
	ErrCodeInvalid     = errors.New("code invalid")
	ErrContractSigned  = errors.New("contract already signed")
)

const (
	maxSendsPerWindow  = 3
	sendWindow         = 10 * time.Minute
	maxConfirmAttempts = 5
	defaultCodeTTL     = 5 * time.Minute
)

// SMSService drives contract signing by SMS code: a code goes to the
// client's phone and a correct confirmation marks the contract signed.
type SMSService struct {
	Repo        repositories.SMSConfirmationRepository
	ContractSvc *ContractService
	Gateway     *utils.SMSGateway
	CodeTTL     time.Duration
}

func NewSMSService(repo repositories.SMSConfirmationRepository, contractSvc *ContractService, gateway *utils.SMSGateway) *SMSService {
	return &SMSService{
		Repo:        repo,
		ContractSvc: contractSvc,
		Gateway:     gateway,
		CodeTTL:     defaultCodeTTL,
	}
}

func (s *SMSService) generateCode() string {
	src := rand.NewSource(time.Now().UnixNano())
	rnd := rand.New(src)
	return fmt.Sprintf("%06d", rnd.Intn(1000000))
}

func (s *SMSService) SendCode(contractID int, phone string) error {
	ct, err := s.ContractSvc.GetByID(contractID)
	if err != nil {
		return err
	}
	if ct == nil {
		return ErrContractNotFound
	}
	if ct.Signed {
		return ErrContractSigned
	}

	since := time.Now().Add(-sendWindow)
	cnt, err := s.Repo.CountSentSince(contractID, since)
	if err != nil {
		return err
	}
	if cnt >= maxSendsPerWindow {
		return ErrResendThrottled
	}

	code := s.generateCode()
	text := fmt.Sprintf("Código de assinatura do contrato %s: %s", ct.ContractNumber, code)
	if _, err := s.Gateway.Send(phone, text); err != nil {
		return fmt.Errorf("sms gateway error: %w", err)
	}

	rec := &models.SMSConfirmation{
		ContractID: contractID,
		Phone:      phone,
		SMSCode:    code,
		SentAt:     time.Now(),
	}
	if _, err := s.Repo.Create(rec); err != nil {
		return fmt.Errorf("db error after SMS: %w", err)
	}

	log.Printf("[sms][send] ok: contract_id=%d phone=%s", contractID, phone)
	return nil
}

// ResendCode re-sends the latest unexpired code, or issues a fresh one
// when none is usable. Throttling applies either way.
func (s *SMSService) ResendCode(contractID int, phone string) error {
	existing, err := s.Repo.LatestByContract(contractID)
	if err != nil {
		return err
	}
	if existing == nil || existing.Confirmed || s.isExpired(existing.SentAt) {
		if phone == "" {
			return fmt.Errorf("phone required for first/expired resend")
		}
		return s.SendCode(contractID, phone)
	}

	since := time.Now().Add(-sendWindow)
	cnt, err := s.Repo.CountSentSince(contractID, since)
	if err != nil {
		return err
	}
	if cnt >= maxSendsPerWindow {
		return ErrResendThrottled
	}

	text := fmt.Sprintf("Código de assinatura: %s", existing.SMSCode)
	if _, err := s.Gateway.Send(existing.Phone, text); err != nil {
		return fmt.Errorf("resend error: %w", err)
	}
	log.Printf("[sms][resend] contract_id=%d phone=%s", contractID, existing.Phone)
	return nil
}

// Confirm checks the code, counts attempts and signs the contract on
// success.
func (s *SMSService) Confirm(contractID int, code string) (bool, error) {
	rec, err := s.Repo.LatestByContract(contractID)
	if err != nil {
		return false, err
	}
	if rec == nil || rec.Confirmed {
		return false, ErrCodeInvalid
	}
	if s.isExpired(rec.SentAt) {
		return false, ErrCodeExpired
	}
	if rec.Attempts >= maxConfirmAttempts {
		return false, ErrTooManyAttempts
	}

	if rec.SMSCode != code {
		if err := s.Repo.IncrementAttempts(rec.ID); err != nil {
			return false, err
		}
		if rec.Attempts+1 >= maxConfirmAttempts {
			return false, ErrTooManyAttempts
		}
		return false, ErrCodeInvalid
	}

	if err := s.Repo.MarkConfirmed(rec.ID, time.Now()); err != nil {
		return false, err
	}
	if err := s.ContractSvc.MarkSigned(contractID); err != nil {
		log.Printf("[sms][confirm] contract sign failed: contract_id=%d err=%v", contractID, err)
		return false, err
	}

	log.Printf("[sms][confirm] OK contract_id=%d", contractID)
	return true, nil
}

func (s *SMSService) isExpired(sentAt time.Time) bool {
	ttl := s.CodeTTL
	if ttl <= 0 {
		ttl = defaultCodeTTL
	}
	return time.Now().After(sentAt.Add(ttl))
}

func (s *SMSService) DeleteConfirmations(contractID int) error {
	return s.Repo.DeleteByContract(contractID)
}
