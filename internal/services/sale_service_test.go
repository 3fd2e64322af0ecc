package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

type saleFixture struct {
	svc          *SaleService
	sales        *fakeSaleRepo
	proposals    *fakeProposalRepo
	clients      *fakeClientRepo
	vehicles     *fakeVehicleRepo
	banks        *fakeBankRepo
	reservations *fakeReservationRepo
	notifier     *fakeNotifier
}

func newSaleFixture() *saleFixture {
	f := &saleFixture{
		sales:        newFakeSaleRepo(),
		proposals:    newFakeProposalRepo(),
		clients:      newFakeClientRepo(),
		vehicles:     newFakeVehicleRepo(),
		banks:        newFakeBankRepo(),
		reservations: newFakeReservationRepo(),
		notifier:     &fakeNotifier{},
	}
	f.svc = NewSaleService(f.sales, f.proposals, f.clients, f.vehicles, f.banks, f.reservations, f.notifier)
	return f
}

func TestSaleCloseFromProposal(t *testing.T) {
	f := newSaleFixture()
	bank := f.banks.add(&models.Bank{Name: "Banco Alfa", CommissionRate: 2.5, Active: true})
	c := f.clients.add(&models.Client{Name: "Ana", FunnelStage: models.StageProposta})
	v := f.vehicles.add(&models.Vehicle{Status: models.VehicleReservado})
	p := f.proposals.add(&models.Proposal{
		Status:       models.ProposalAprovada,
		ClientID:     c.ID,
		VehicleID:    v.ID,
		BankID:       &bank.ID,
		VehicleValue: 80000,
	})
	f.reservations.reservations[1] = &models.Reservation{ID: 1, VehicleID: v.ID, Status: models.ReservaAtiva}

	sale, err := f.svc.CloseFromProposal(p.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, 80000.0, sale.TotalValue)
	assert.InDelta(t, 2000.0, sale.CommissionValue, 0.001) // 80000 * 2.5%
	assert.Equal(t, 5, sale.SellerID)

	assert.Equal(t, models.VehicleVendido, v.Status)
	assert.Equal(t, models.StageVendido, c.FunnelStage)
	assert.Equal(t, models.ReservaConvertida, f.reservations.reservations[1].Status)
	require.Len(t, f.notifier.closed, 1)
	assert.Equal(t, sale.ID, f.notifier.closed[0].ID)
}

func TestSaleCommissionZeroWithoutBank(t *testing.T) {
	f := newSaleFixture()
	c := f.clients.add(&models.Client{})
	v := f.vehicles.add(&models.Vehicle{Status: models.VehicleDisponivel})
	p := f.proposals.add(&models.Proposal{
		Status:       models.ProposalAprovada,
		ClientID:     c.ID,
		VehicleID:    v.ID,
		VehicleValue: 35000,
	})

	sale, err := f.svc.CloseFromProposal(p.ID, 2)
	require.NoError(t, err)
	assert.Zero(t, sale.CommissionValue)
}

func TestSaleCloseGuards(t *testing.T) {
	f := newSaleFixture()
	pending := f.proposals.add(&models.Proposal{Status: models.ProposalPendente})

	_, err := f.svc.CloseFromProposal(404, 1)
	assert.ErrorIs(t, err, ErrProposalNotFound)

	_, err = f.svc.CloseFromProposal(pending.ID, 1)
	assert.ErrorIs(t, err, ErrProposalNotApproved)
}

func TestSaleClosedOncePerProposal(t *testing.T) {
	f := newSaleFixture()
	c := f.clients.add(&models.Client{})
	v := f.vehicles.add(&models.Vehicle{})
	p := f.proposals.add(&models.Proposal{
		Status:       models.ProposalAprovada,
		ClientID:     c.ID,
		VehicleID:    v.ID,
		VehicleValue: 20000,
	})

	_, err := f.svc.CloseFromProposal(p.ID, 1)
	require.NoError(t, err)

	_, err = f.svc.CloseFromProposal(p.ID, 1)
	assert.ErrorIs(t, err, ErrSaleExists)
	assert.Len(t, f.sales.sales, 1)
}

func TestSaleCloseSurvivesSideEffectFailures(t *testing.T) {
	f := newSaleFixture()
	c := f.clients.add(&models.Client{})
	v := f.vehicles.add(&models.Vehicle{})
	p := f.proposals.add(&models.Proposal{
		Status:       models.ProposalAprovada,
		ClientID:     c.ID,
		VehicleID:    v.ID,
		VehicleValue: 15000,
	})
	f.vehicles.errStatus = errForced
	f.clients.errStage = errForced

	sale, err := f.svc.CloseFromProposal(p.ID, 1)
	require.NoError(t, err, "status write failures must not fail the sale")
	assert.NotZero(t, sale.ID)
}
