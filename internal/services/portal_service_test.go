package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

func newPortalFixture() (*PortalService, *fakeClientRepo, *fakeProposalRepo, *fakeContractRepo) {
	clients := newFakeClientRepo()
	proposals := newFakeProposalRepo()
	contracts := newFakeContractRepo()
	svc := NewPortalService(
		clients,
		proposals,
		contracts,
		newFakeReservationRepo(),
		newFakeReceiptRepo(),
		newFakeWarrantyRepo(),
		newFakeTransferRepo(),
		newFakeWithdrawalRepo(),
	)
	return svc, clients, proposals, contracts
}

func TestPortalClientForEmail(t *testing.T) {
	svc, clients, _, _ := newPortalFixture()
	clients.add(&models.Client{Name: "Ana", Email: "ana@example.com"})

	c, err := svc.ClientForEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)

	_, err = svc.ClientForEmail("outra@example.com")
	assert.ErrorIs(t, err, ErrPortalNoClient)
}

func TestPortalOverviewScopedToClient(t *testing.T) {
	svc, clients, proposals, contracts := newPortalFixture()
	mine := clients.add(&models.Client{Name: "Ana", Email: "ana@example.com"})
	other := clients.add(&models.Client{Name: "Beto", Email: "beto@example.com"})

	proposals.add(&models.Proposal{ClientID: mine.ID, ProposalNumber: "PROP000001"})
	proposals.add(&models.Proposal{ClientID: other.ID, ProposalNumber: "PROP000002"})
	_, err := contracts.Create(&models.Contract{ClientID: mine.ID, ContractNumber: "CONT000001"})
	require.NoError(t, err)

	ov, err := svc.Overview("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, mine.ID, ov.Client.ID)
	require.Len(t, ov.Proposals, 1)
	assert.Equal(t, "PROP000001", ov.Proposals[0].ProposalNumber)
	require.Len(t, ov.Contracts, 1)
	assert.Empty(t, ov.Reservations)
	assert.Empty(t, ov.Receipts)
}

func TestPortalOwnsContract(t *testing.T) {
	svc, clients, _, contracts := newPortalFixture()
	mine := clients.add(&models.Client{Email: "ana@example.com"})
	other := clients.add(&models.Client{Email: "beto@example.com"})

	myCt := &models.Contract{ClientID: mine.ID}
	_, err := contracts.Create(myCt)
	require.NoError(t, err)
	otherCt := &models.Contract{ClientID: other.ID}
	_, err = contracts.Create(otherCt)
	require.NoError(t, err)

	ok, err := svc.OwnsContract("ana@example.com", myCt.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.OwnsContract("ana@example.com", otherCt.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.OwnsContract("ana@example.com", 999)
	require.NoError(t, err)
	assert.False(t, ok)
}
