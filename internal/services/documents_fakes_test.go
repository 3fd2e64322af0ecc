package services

import (
	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

type fakeWarrantyRepo struct {
	items  map[int]*models.Warranty
	nextID int
}

func newFakeWarrantyRepo() *fakeWarrantyRepo {
	return &fakeWarrantyRepo{items: map[int]*models.Warranty{}, nextID: 1}
}

func (f *fakeWarrantyRepo) Create(w *models.Warranty) (int64, error) {
	if w.ID == 0 {
		w.ID = f.nextID
		f.nextID++
	}
	f.items[w.ID] = w
	return int64(w.ID), nil
}

func (f *fakeWarrantyRepo) GetByID(id int) (*models.Warranty, error) { return f.items[id], nil }

func (f *fakeWarrantyRepo) List(limit, offset int) ([]*models.Warranty, error) {
	var out []*models.Warranty
	for _, w := range f.items {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWarrantyRepo) ListByClient(clientID int) ([]*models.Warranty, error) {
	var out []*models.Warranty
	for _, w := range f.items {
		if w.ClientID == clientID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWarrantyRepo) Delete(id int) error {
	delete(f.items, id)
	return nil
}

type fakeTransferRepo struct {
	items  map[int]*models.TransferAuthorization
	nextID int
}

func newFakeTransferRepo() *fakeTransferRepo {
	return &fakeTransferRepo{items: map[int]*models.TransferAuthorization{}, nextID: 1}
}

func (f *fakeTransferRepo) Create(t *models.TransferAuthorization) (int64, error) {
	if t.ID == 0 {
		t.ID = f.nextID
		f.nextID++
	}
	f.items[t.ID] = t
	return int64(t.ID), nil
}

func (f *fakeTransferRepo) GetByID(id int) (*models.TransferAuthorization, error) {
	return f.items[id], nil
}

func (f *fakeTransferRepo) List(limit, offset int) ([]*models.TransferAuthorization, error) {
	var out []*models.TransferAuthorization
	for _, t := range f.items {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTransferRepo) ListByClient(clientID int) ([]*models.TransferAuthorization, error) {
	var out []*models.TransferAuthorization
	for _, t := range f.items {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTransferRepo) Delete(id int) error {
	delete(f.items, id)
	return nil
}

type fakeWithdrawalRepo struct {
	items  map[int]*models.WithdrawalDeclaration
	nextID int
}

func newFakeWithdrawalRepo() *fakeWithdrawalRepo {
	return &fakeWithdrawalRepo{items: map[int]*models.WithdrawalDeclaration{}, nextID: 1}
}

func (f *fakeWithdrawalRepo) Create(w *models.WithdrawalDeclaration) (int64, error) {
	if w.ID == 0 {
		w.ID = f.nextID
		f.nextID++
	}
	f.items[w.ID] = w
	return int64(w.ID), nil
}

func (f *fakeWithdrawalRepo) GetByID(id int) (*models.WithdrawalDeclaration, error) {
	return f.items[id], nil
}

func (f *fakeWithdrawalRepo) List(limit, offset int) ([]*models.WithdrawalDeclaration, error) {
	var out []*models.WithdrawalDeclaration
	for _, w := range f.items {
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWithdrawalRepo) ListByClient(clientID int) ([]*models.WithdrawalDeclaration, error) {
	var out []*models.WithdrawalDeclaration
	for _, w := range f.items {
		if w.ClientID == clientID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWithdrawalRepo) Delete(id int) error {
	delete(f.items, id)
	return nil
}

type fakeReceiptRepo struct {
	items  map[int]*models.Receipt
	nextID int
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{items: map[int]*models.Receipt{}, nextID: 1}
}

func (f *fakeReceiptRepo) Create(rc *models.Receipt) (int64, error) {
	if rc.ID == 0 {
		rc.ID = f.nextID
		f.nextID++
	}
	f.items[rc.ID] = rc
	return int64(rc.ID), nil
}

func (f *fakeReceiptRepo) GetByID(id int) (*models.Receipt, error) { return f.items[id], nil }

func (f *fakeReceiptRepo) List(limit, offset int) ([]*models.Receipt, error) {
	var out []*models.Receipt
	for _, rc := range f.items {
		out = append(out, rc)
	}
	return out, nil
}

func (f *fakeReceiptRepo) ListByClient(clientID int) ([]*models.Receipt, error) {
	var out []*models.Receipt
	for _, rc := range f.items {
		if rc.ClientID != nil && *rc.ClientID == clientID {
			out = append(out, rc)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) Delete(id int) error {
	delete(f.items, id)
	return nil
}

var (
	_ repositories.WarrantyRepository   = (*fakeWarrantyRepo)(nil)
	_ repositories.TransferRepository   = (*fakeTransferRepo)(nil)
	_ repositories.WithdrawalRepository = (*fakeWithdrawalRepo)(nil)
	_ repositories.ReceiptRepository    = (*fakeReceiptRepo)(nil)
)
