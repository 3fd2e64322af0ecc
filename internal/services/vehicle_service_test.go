package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

func newVehicleService() (*VehicleService, *fakeVehicleRepo, *fakeReservationRepo) {
	vehicles := newFakeVehicleRepo()
	reservations := newFakeReservationRepo()
	return NewVehicleService(vehicles, reservations), vehicles, reservations
}

func TestVehicleCreateDefaultsStatus(t *testing.T) {
	svc, _, _ := newVehicleService()

	v, err := svc.Create(&models.Vehicle{Brand: "Fiat", Model: "Argo", ModelYear: 2024, Price: 78000})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleDisponivel, v.Status)

	_, err = svc.Create(&models.Vehicle{Status: "oficina"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestVehicleGetByIDMissing(t *testing.T) {
	svc, _, _ := newVehicleService()
	_, err := svc.GetByID(9)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestVehicleListByStatus(t *testing.T) {
	svc, vehicles, _ := newVehicleService()
	vehicles.add(&models.Vehicle{Status: models.VehicleDisponivel})
	vehicles.add(&models.Vehicle{Status: models.VehicleVendido})

	out, err := svc.ListByStatus(models.VehicleDisponivel, 100, 0)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = svc.ListByStatus("quebrado", 100, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestVehicleDeleteBlockedByActiveReservation(t *testing.T) {
	svc, vehicles, reservations := newVehicleService()
	v := vehicles.add(&models.Vehicle{Status: models.VehicleReservado})
	reservations.reservations[1] = &models.Reservation{ID: 1, VehicleID: v.ID, Status: models.ReservaAtiva}

	assert.ErrorIs(t, svc.Delete(v.ID), ErrVehicleInUse)

	reservations.reservations[1].Status = models.ReservaCancelada
	require.NoError(t, svc.Delete(v.ID))
	assert.Empty(t, vehicles.vehicles)
}
