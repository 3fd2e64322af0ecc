package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/authz"
	"autorevenda/internal/models"
)

// stubAuth avoids bcrypt cost in tests
type stubAuth struct{}

func (stubAuth) HashPassword(plain string) (string, error) { return "hash:" + plain, nil }
func (stubAuth) CheckPassword(hash, plain string) bool     { return hash == "hash:"+plain }

type stubEmails struct {
	credentials  []string
	reservations []string
	err          error
}

func (s *stubEmails) SendCredentialsEmail(email, name, plainPassword string) error {
	if s.err != nil {
		return s.err
	}
	s.credentials = append(s.credentials, email)
	return nil
}

func (s *stubEmails) SendReservationEmail(email, name, vehicle, validUntil string) error {
	if s.err != nil {
		return s.err
	}
	s.reservations = append(s.reservations, email)
	return nil
}

func validUser() *models.User {
	return &models.User{
		Name:   "Paula Ramos",
		Email:  "paula@example.com",
		Phone:  "+55 11 98888-7777",
		RoleID: authz.RoleVendedor,
	}
}

func newAccountService() (*AccountService, *fakeUserRepo, *stubEmails) {
	users := newFakeUserRepo()
	emails := &stubEmails{}
	return NewAccountService(users, stubAuth{}, emails), users, emails
}

func TestAccountCreate(t *testing.T) {
	svc, users, emails := newAccountService()

	created, err := svc.Create(validUser(), "segredo1", 1)
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, "hash:segredo1", created.PasswordHash)

	stored, _ := users.GetByEmail("paula@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, []string{"paula@example.com"}, emails.credentials)
}

func TestAccountCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		mut      func(u *models.User)
		password string
		wantErr  error
	}{
		{"bad email", func(u *models.User) { u.Email = "sem-arroba" }, "segredo1", ErrInvalidEmail},
		{"empty email", func(u *models.User) { u.Email = "  " }, "segredo1", ErrInvalidEmail},
		{"short password", func(u *models.User) {}, "12345", ErrInvalidPassword},
		{"short name", func(u *models.User) { u.Name = "P" }, "segredo1", ErrInvalidName},
		{"bad phone", func(u *models.User) { u.Phone = "abc" }, "segredo1", ErrInvalidPhone},
		{"unknown role", func(u *models.User) { u.RoleID = 33 }, "segredo1", ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAccountService()
			u := validUser()
			tt.mut(u)
			_, err := svc.Create(u, tt.password, 1)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountCreateRateLimit(t *testing.T) {
	svc, _, _ := newAccountService()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	for i := 0; i < accountsPerWindow; i++ {
		u := validUser()
		u.Email = string(rune('a'+i)) + "@example.com"
		_, err := svc.Create(u, "segredo1", 1)
		require.NoError(t, err)
	}

	u := validUser()
	u.Email = "extra@example.com"
	_, err := svc.Create(u, "segredo1", 1)
	assert.ErrorIs(t, err, ErrRateLimited)

	// another admin has their own quota
	u2 := validUser()
	u2.Email = "outro@example.com"
	_, err = svc.Create(u2, "segredo1", 2)
	assert.NoError(t, err)

	// window slides
	current = base.Add(accountWindow + time.Minute)
	u3 := validUser()
	u3.Email = "depois@example.com"
	_, err = svc.Create(u3, "segredo1", 1)
	assert.NoError(t, err)
}

func TestAccountCreateHidesStorageErrors(t *testing.T) {
	svc, users, emails := newAccountService()
	users.errCreate = errForced

	_, err := svc.Create(validUser(), "segredo1", 1)
	assert.ErrorIs(t, err, ErrAccountCreate)
	assert.Empty(t, emails.credentials)
}

func TestAccountCreateDuplicateEmailHidden(t *testing.T) {
	svc, _, _ := newAccountService()

	_, err := svc.Create(validUser(), "segredo1", 1)
	require.NoError(t, err)

	dup := validUser()
	_, err = svc.Create(dup, "segredo1", 1)
	assert.ErrorIs(t, err, ErrAccountCreate, "duplicate email must not leak")
}

func TestAccountCreateSurvivesEmailFailure(t *testing.T) {
	svc, _, emails := newAccountService()
	emails.err = errForced

	created, err := svc.Create(validUser(), "segredo1", 1)
	require.NoError(t, err, "credentials email is best effort")
	assert.NotZero(t, created.ID)
}

func TestAccountProvisionPortal(t *testing.T) {
	svc, users, emails := newAccountService()
	client := &models.Client{Name: "Cliente Portal", Email: "portal@example.com", Phone: "+5511977776666"}

	created, err := svc.ProvisionPortal(client, 3)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleCliente, created.RoleID)
	assert.Equal(t, "portal@example.com", created.Email)

	stored, _ := users.GetByEmail("portal@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, []string{"portal@example.com"}, emails.credentials)
}

func TestAccountProvisionPortalNilClient(t *testing.T) {
	svc, _, _ := newAccountService()
	_, err := svc.ProvisionPortal(nil, 3)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestGeneratePassword(t *testing.T) {
	p, err := generatePassword(generatedPasswordLen)
	require.NoError(t, err)
	assert.Len(t, p, generatedPasswordLen)
	for _, r := range p {
		assert.Contains(t, passwordAlphabet, string(r))
	}
}
