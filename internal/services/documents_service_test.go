package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorevenda/internal/models"
)

type docsFixture struct {
	svc      *DocumentsService
	clients  *fakeClientRepo
	vehicles *fakeVehicleRepo
	gen      *fakeGenerator
	client   *models.Client
	vehicle  *models.Vehicle
}

func newDocsFixture() *docsFixture {
	f := &docsFixture{
		clients:  newFakeClientRepo(),
		vehicles: newFakeVehicleRepo(),
		gen:      &fakeGenerator{},
	}
	f.svc = NewDocumentsService(
		newFakeWarrantyRepo(),
		newFakeTransferRepo(),
		newFakeWithdrawalRepo(),
		newFakeReceiptRepo(),
		f.clients,
		f.vehicles,
		NewNumberingService(newFakeSequenceRepo()),
		f.gen,
	)
	f.client = f.clients.add(&models.Client{Name: "Bruno Dias", CPF: "123.456.789-00"})
	f.vehicle = f.vehicles.add(&models.Vehicle{Brand: "Toyota", Model: "Corolla", ModelYear: 2021, Price: 95000})
	return f
}

func TestWarrantyCreateDefaults(t *testing.T) {
	f := newDocsFixture()

	w, err := f.svc.CreateWarranty(&models.Warranty{ClientID: f.client.ID, VehicleID: f.vehicle.ID})
	require.NoError(t, err)
	assert.Equal(t, "GAR000001", w.WarrantyNumber)
	assert.Equal(t, 3, w.CoverageMonths)
	assert.False(t, w.StartDate.IsZero())
}

func TestWarrantyCreateUnknownParties(t *testing.T) {
	f := newDocsFixture()

	_, err := f.svc.CreateWarranty(&models.Warranty{ClientID: 99, VehicleID: f.vehicle.ID})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = f.svc.CreateWarranty(&models.Warranty{ClientID: f.client.ID, VehicleID: 99})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestWarrantyPDF(t *testing.T) {
	f := newDocsFixture()
	w, err := f.svc.CreateWarranty(&models.Warranty{
		ClientID:       f.client.ID,
		VehicleID:      f.vehicle.ID,
		CoverageMonths: 12,
		CoverageKM:     20000,
	})
	require.NoError(t, err)

	path, err := f.svc.WarrantyPDF(w.ID)
	require.NoError(t, err)
	assert.Equal(t, "/garantia_GAR000001.pdf", path)
	require.NotNil(t, f.gen.warranty)
	assert.Equal(t, "Bruno Dias", f.gen.warranty.Client.Name)
	assert.Equal(t, 12, f.gen.warranty.CoverageMonths)
	assert.Equal(t, 20000, f.gen.warranty.CoverageKM)

	_, err = f.svc.WarrantyPDF(99)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestTransferDefaultsToVehiclePrice(t *testing.T) {
	f := newDocsFixture()

	tr, err := f.svc.CreateTransfer(&models.TransferAuthorization{
		ClientID:  f.client.ID,
		VehicleID: f.vehicle.ID,
		Location:  "São Paulo, SP",
	})
	require.NoError(t, err)
	assert.Equal(t, "ATPV000001", tr.AuthorizationNumber)
	assert.Equal(t, 95000.0, tr.VehicleValue)

	path, err := f.svc.TransferPDF(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, "/atpv_ATPV000001.pdf", path)
	assert.Equal(t, "São Paulo, SP", f.gen.transfer.Location)
}

func TestTransferKeepsExplicitValue(t *testing.T) {
	f := newDocsFixture()

	tr, err := f.svc.CreateTransfer(&models.TransferAuthorization{
		ClientID:     f.client.ID,
		VehicleID:    f.vehicle.ID,
		VehicleValue: 87000,
	})
	require.NoError(t, err)
	assert.Equal(t, 87000.0, tr.VehicleValue)
}

func TestWithdrawalDefaultsReason(t *testing.T) {
	f := newDocsFixture()

	w, err := f.svc.CreateWithdrawal(&models.WithdrawalDeclaration{
		ClientID:  f.client.ID,
		VehicleID: f.vehicle.ID,
		Reason:    "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, "DES000001", w.DeclarationNumber)
	assert.Equal(t, "desistência voluntária", w.Reason)

	path, err := f.svc.WithdrawalPDF(w.ID)
	require.NoError(t, err)
	assert.Equal(t, "/desistencia_DES000001.pdf", path)
	assert.Equal(t, "desistência voluntária", f.gen.withdrawal.Reason)
}

func TestReceiptBackfillsPayerFromClient(t *testing.T) {
	f := newDocsFixture()

	rc, err := f.svc.CreateReceipt(&models.Receipt{
		ClientID:      &f.client.ID,
		Amount:        1500,
		PaymentMethod: "pix",
		Reference:     "sinal de reserva",
	})
	require.NoError(t, err)
	assert.Equal(t, "REC000001", rc.ReceiptNumber)
	assert.Equal(t, "Bruno Dias", rc.PayerName)
	assert.Equal(t, "123.456.789-00", rc.PayerCPF)

	path, err := f.svc.ReceiptPDF(rc.ID)
	require.NoError(t, err)
	assert.Equal(t, "/recibo_REC000001.pdf", path)
	assert.Equal(t, 1500.0, f.gen.receipt.Amount)
	assert.Equal(t, "pix", f.gen.receipt.PaymentMethod)
}

func TestReceiptWithoutClient(t *testing.T) {
	f := newDocsFixture()

	rc, err := f.svc.CreateReceipt(&models.Receipt{
		Amount:    500,
		PayerName: "Avulso",
		PayerCPF:  "000.000.000-00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Avulso", rc.PayerName)

	missing := 77
	_, err = f.svc.CreateReceipt(&models.Receipt{ClientID: &missing, Amount: 10})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
