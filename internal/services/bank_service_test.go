package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

func TestBankCreate(t *testing.T) {
	svc := NewBankService(newFakeBankRepo())

	b, err := svc.Create(&models.Bank{Name: "Banco Beta", CommissionRate: 1.8})
	require.NoError(t, err)
	assert.True(t, b.Active)
	assert.NotZero(t, b.ID)
}

func TestBankValidation(t *testing.T) {
	svc := NewBankService(newFakeBankRepo())

	_, err := svc.Create(&models.Bank{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidBank)

	_, err = svc.Create(&models.Bank{Name: "B", CommissionRate: -1})
	assert.ErrorIs(t, err, ErrInvalidCommission)

	_, err = svc.Create(&models.Bank{Name: "B", CommissionRate: 101})
	assert.ErrorIs(t, err, ErrInvalidCommission)
}

func TestBankGetByIDMissing(t *testing.T) {
	svc := NewBankService(newFakeBankRepo())
	_, err := svc.GetByID(4)
	assert.ErrorIs(t, err, ErrBankNotFound)
}
