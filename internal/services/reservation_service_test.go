package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

func newReservationService() (*ReservationService, *fakeReservationRepo, *fakeVehicleRepo, *fakeClientRepo, *fakeGenerator) {
	repo := newFakeReservationRepo()
	vehicles := newFakeVehicleRepo()
	clients := newFakeClientRepo()
	gen := &fakeGenerator{}
	svc := NewReservationService(repo, vehicles, clients, NewNumberingService(newFakeSequenceRepo()), gen)
	return svc, repo, vehicles, clients, gen
}

func TestReservationCreate(t *testing.T) {
	svc, _, vehicles, clients, _ := newReservationService()
	today := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	c := clients.add(&models.Client{Name: "Ana"})
	v := vehicles.add(&models.Vehicle{Brand: "Fiat", Status: models.VehicleDisponivel})

	res, err := svc.Create(c.ID, v.ID, 1500)
	require.NoError(t, err)

	assert.Equal(t, "RES000001", res.ReservationNumber)
	assert.Equal(t, models.ReservaAtiva, res.Status)
	assert.Equal(t, today, res.ReservationDate)
	assert.Equal(t, today.AddDate(0, 0, 10), res.ValidUntil)
	assert.Equal(t, models.VehicleReservado, v.Status)
}

func TestReservationCreateSendsConfirmationEmail(t *testing.T) {
	svc, _, vehicles, clients, _ := newReservationService()
	emails := &stubEmails{}
	svc.Emails = emails

	c := clients.add(&models.Client{Name: "Ana", Email: "ana@example.com"})
	v := vehicles.add(&models.Vehicle{Brand: "Fiat", Status: models.VehicleDisponivel})

	_, err := svc.Create(c.ID, v.ID, 1000)
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, emails.reservations)

	// email failure never fails the hold
	emails.err = errForced
	v2 := vehicles.add(&models.Vehicle{Status: models.VehicleDisponivel})
	_, err = svc.Create(c.ID, v2.ID, 1000)
	assert.NoError(t, err)
}

func TestReservationCreateGuards(t *testing.T) {
	svc, _, vehicles, clients, _ := newReservationService()
	c := clients.add(&models.Client{Name: "Ana"})
	reserved := vehicles.add(&models.Vehicle{Status: models.VehicleReservado})

	_, err := svc.Create(999, reserved.ID, 0)
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Create(c.ID, 999, 0)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = svc.Create(c.ID, reserved.ID, 0)
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestReservationCreateRollsBackOnVehicleFailure(t *testing.T) {
	svc, repo, vehicles, clients, _ := newReservationService()
	c := clients.add(&models.Client{Name: "Ana"})
	v := vehicles.add(&models.Vehicle{Status: models.VehicleDisponivel})
	vehicles.errStatus = errForced

	_, err := svc.Create(c.ID, v.ID, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, errForced)
	assert.Empty(t, repo.reservations, "failed hold must not linger")
	assert.Equal(t, []int{1}, repo.deleted)
}

func TestReservationCancelFreesVehicle(t *testing.T) {
	svc, repo, vehicles, _, _ := newReservationService()
	v := vehicles.add(&models.Vehicle{Status: models.VehicleReservado})
	repo.reservations[1] = &models.Reservation{ID: 1, VehicleID: v.ID, Status: models.ReservaAtiva}

	require.NoError(t, svc.Cancel(1))
	assert.Equal(t, models.ReservaCancelada, repo.reservations[1].Status)
	assert.Equal(t, models.VehicleDisponivel, v.Status)
}

func TestReservationConvertMarksSold(t *testing.T) {
	svc, repo, vehicles, _, _ := newReservationService()
	v := vehicles.add(&models.Vehicle{Status: models.VehicleReservado})
	repo.reservations[1] = &models.Reservation{ID: 1, VehicleID: v.ID, Status: models.ReservaAtiva}

	require.NoError(t, svc.Convert(1))
	assert.Equal(t, models.ReservaConvertida, repo.reservations[1].Status)
	assert.Equal(t, models.VehicleVendido, v.Status)
}

func TestReservationCloseGuards(t *testing.T) {
	svc, repo, _, _, _ := newReservationService()
	repo.reservations[1] = &models.Reservation{ID: 1, Status: models.ReservaCancelada}

	assert.ErrorIs(t, svc.Cancel(1), ErrReservationClosed)
	assert.ErrorIs(t, svc.Convert(1), ErrReservationClosed)
	assert.ErrorIs(t, svc.Cancel(99), ErrReservationNotFound)
}

func TestReservationGeneratePDF(t *testing.T) {
	svc, repo, vehicles, clients, gen := newReservationService()
	c := clients.add(&models.Client{Name: "Ana Lima", CPF: "111.222.333-44"})
	v := vehicles.add(&models.Vehicle{Brand: "VW", Model: "Gol", ModelYear: 2022})
	repo.reservations[1] = &models.Reservation{
		ID:                1,
		ReservationNumber: "RES000007",
		ClientID:          c.ID,
		VehicleID:         v.ID,
		DepositAmount:     2000,
		Status:            models.ReservaAtiva,
	}

	path, err := svc.GeneratePDF(1)
	require.NoError(t, err)
	assert.Equal(t, "/reserva_RES000007.pdf", path)
	require.NotNil(t, gen.reservation)
	assert.Equal(t, "Ana Lima", gen.reservation.Client.Name)
	assert.Equal(t, "Gol", gen.reservation.Vehicle.Model)
	assert.Equal(t, 2000.0, gen.reservation.DepositAmount)
}
