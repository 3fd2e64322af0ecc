package services

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"

	"autorevenda/internal/authz"
	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be 6-128 characters")
	ErrInvalidName     = errors.New("name must have at least 2 characters")
	ErrInvalidPhone    = errors.New("invalid phone")
	ErrInvalidRole     = errors.New("invalid role")
	ErrRateLimited     = errors.New("account creation rate limit exceeded")
	// ErrAccountCreate hides duplicate-email and other storage details
	// from the caller.
	ErrAccountCreate = errors.New("could not create account")
)

const (
	accountWindow        = time.Hour
	accountsPerWindow    = 10
	minPasswordLen       = 6
	maxPasswordLen       = 128
	generatedPasswordLen = 10
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s().-]{7,19}$`)
)

// AccountService provisions staff and portal user accounts. Creation
// is rate limited per creating admin with an in-memory sliding window.
type AccountService struct {
	UserRepo repositories.UserRepository
	Auth     AuthService
	Emails   EmailService

	mu      sync.Mutex
	created map[int][]time.Time
	now     func() time.Time
}

func NewAccountService(userRepo repositories.UserRepository, auth AuthService, emails EmailService) *AccountService {
	return &AccountService{
		UserRepo: userRepo,
		Auth:     auth,
		Emails:   emails,
		created:  make(map[int][]time.Time),
		now:      time.Now,
	}
}

func validateAccount(user *models.User, plainPassword string) error {
	email := strings.TrimSpace(user.Email)
	if email == "" || len(email) > 254 || !emailRe.MatchString(email) {
		return ErrInvalidEmail
	}
	user.Email = email
	if l := len(plainPassword); l < minPasswordLen || l > maxPasswordLen {
		return ErrInvalidPassword
	}
	if len(strings.TrimSpace(user.Name)) < 2 {
		return ErrInvalidName
	}
	if p := strings.TrimSpace(user.Phone); p != "" && !phoneRe.MatchString(p) {
		return ErrInvalidPhone
	}
	if authz.RoleName(user.RoleID) == "" {
		return ErrInvalidRole
	}
	return nil
}

// allow records a creation for adminID and reports whether it is
// still inside the per-admin quota.
func (s *AccountService) allow(adminID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-accountWindow)
	kept := s.created[adminID][:0]
	for _, t := range s.created[adminID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= accountsPerWindow {
		s.created[adminID] = kept
		return false
	}
	s.created[adminID] = append(kept, s.now())
	return true
}

// Create provisions an account on behalf of createdBy (an admin or,
// for portal accounts, the responsible seller).
func (s *AccountService) Create(user *models.User, plainPassword string, createdBy int) (*models.User, error) {
	if err := validateAccount(user, plainPassword); err != nil {
		return nil, err
	}
	if !s.allow(createdBy) {
		log.Printf("[account][create] rate limit hit: created_by=%d", createdBy)
		return nil, ErrRateLimited
	}

	hash, err := s.Auth.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.Active = true
	user.CreatedAt = time.Now()

	if err := s.UserRepo.Create(user); err != nil {
		// duplicate email and other storage errors get the same answer
		log.Printf("[account][create] insert failed email=%q: %v", user.Email, err)
		return nil, ErrAccountCreate
	}

	if s.Emails != nil {
		if err := s.Emails.SendCredentialsEmail(user.Email, user.Name, plainPassword); err != nil {
			log.Printf("[account][create] credentials email failed for %s: %v", user.Email, err)
		}
	}
	return user, nil
}

// ProvisionPortal creates a cliente-role login for an existing CRM
// client, generating the password.
func (s *AccountService) ProvisionPortal(client *models.Client, createdBy int) (*models.User, error) {
	if client == nil {
		return nil, ErrClientNotFound
	}
	password, err := generatePassword(generatedPasswordLen)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:   client.Name,
		Email:  client.Email,
		Phone:  client.Phone,
		RoleID: authz.RoleCliente,
	}
	return s.Create(user, password, createdBy)
}

func (s *AccountService) GetByID(id int) (*models.User, error) {
	return s.UserRepo.GetByID(id)
}

func (s *AccountService) GetByEmail(email string) (*models.User, error) {
	return s.UserRepo.GetByEmail(email)
}

func (s *AccountService) List(limit, offset int) ([]*models.User, error) {
	return s.UserRepo.List(limit, offset)
}

func (s *AccountService) Update(user *models.User) error {
	return s.UserRepo.Update(user)
}

func (s *AccountService) Deactivate(id int) error {
	return s.UserRepo.Deactivate(id)
}

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generatePassword(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[idx.Int64()]
	}
	return string(out), nil
}
