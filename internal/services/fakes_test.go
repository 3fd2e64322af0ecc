package services

import (
	"errors"
	"sort"
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/pdf"
	"autorevenda/internal/repositories"
)

// In-memory fakes over the repository interfaces. Error injection via
// the err* fields lets tests force specific failure paths.

var errForced = errors.New("forced failure")

// ----- clients -----

type fakeClientRepo struct {
	clients  map[int]*models.Client
	nextID   int
	errStage error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int]*models.Client{}, nextID: 1}
}

func (f *fakeClientRepo) add(c *models.Client) *models.Client {
	if c.ID == 0 {
		c.ID = f.nextID
		f.nextID++
	}
	f.clients[c.ID] = c
	return c
}

func (f *fakeClientRepo) Create(c *models.Client) (int64, error) {
	f.add(c)
	return int64(c.ID), nil
}

func (f *fakeClientRepo) Update(c *models.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) UpdateStage(id int, stage models.FunnelStage, updatedAt time.Time) error {
	if f.errStage != nil {
		return f.errStage
	}
	c, ok := f.clients[id]
	if !ok {
		return errForced
	}
	c.FunnelStage = stage
	c.UpdatedAt = updatedAt
	return nil
}

func (f *fakeClientRepo) GetByID(id int) (*models.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) GetByEmail(email string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) List(limit, offset int) ([]*models.Client, error) {
	return f.ListAll()
}

func (f *fakeClientRepo) ListBySeller(sellerID, limit, offset int) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		if c.SellerID == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) ListAll() ([]*models.Client, error) {
	ids := make([]int, 0, len(f.clients))
	for id := range f.clients {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*models.Client, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.clients[id])
	}
	return out, nil
}

func (f *fakeClientRepo) FindByName(name string) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Delete(id int) error {
	delete(f.clients, id)
	return nil
}

// ----- vehicles -----

type fakeVehicleRepo struct {
	vehicles  map[int]*models.Vehicle
	nextID    int
	errStatus error
	statusLog []models.VehicleStatus
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[int]*models.Vehicle{}, nextID: 1}
}

func (f *fakeVehicleRepo) add(v *models.Vehicle) *models.Vehicle {
	if v.ID == 0 {
		v.ID = f.nextID
		f.nextID++
	}
	f.vehicles[v.ID] = v
	return v
}

func (f *fakeVehicleRepo) Create(v *models.Vehicle) (int64, error) {
	f.add(v)
	return int64(v.ID), nil
}

func (f *fakeVehicleRepo) Update(v *models.Vehicle) error {
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) UpdateStatus(id int, status models.VehicleStatus) error {
	if f.errStatus != nil {
		return f.errStatus
	}
	v, ok := f.vehicles[id]
	if !ok {
		return errForced
	}
	v.Status = status
	f.statusLog = append(f.statusLog, status)
	return nil
}

func (f *fakeVehicleRepo) GetByID(id int) (*models.Vehicle, error) {
	return f.vehicles[id], nil
}

func (f *fakeVehicleRepo) List(limit, offset int) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVehicleRepo) ListByStatus(status models.VehicleStatus, limit, offset int) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range f.vehicles {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) Delete(id int) error {
	delete(f.vehicles, id)
	return nil
}

// ----- proposals -----

type fakeProposalRepo struct {
	proposals map[int]*models.Proposal
	nextID    int
}

func newFakeProposalRepo() *fakeProposalRepo {
	return &fakeProposalRepo{proposals: map[int]*models.Proposal{}, nextID: 1}
}

func (f *fakeProposalRepo) add(p *models.Proposal) *models.Proposal {
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	}
	f.proposals[p.ID] = p
	return p
}

func (f *fakeProposalRepo) Create(p *models.Proposal) (int64, error) {
	f.add(p)
	return int64(p.ID), nil
}

func (f *fakeProposalRepo) Update(p *models.Proposal) error {
	f.proposals[p.ID] = p
	return nil
}

func (f *fakeProposalRepo) UpdateStatus(id int, status models.ProposalStatus) error {
	p, ok := f.proposals[id]
	if !ok {
		return errForced
	}
	p.Status = status
	return nil
}

func (f *fakeProposalRepo) GetByID(id int) (*models.Proposal, error) {
	return f.proposals[id], nil
}

func (f *fakeProposalRepo) List(limit, offset int) ([]*models.Proposal, error) {
	var out []*models.Proposal
	for _, p := range f.proposals {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProposalRepo) ListByClient(clientID int) ([]*models.Proposal, error) {
	var out []*models.Proposal
	for _, p := range f.proposals {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) ListBySeller(sellerID, limit, offset int) ([]*models.Proposal, error) {
	var out []*models.Proposal
	for _, p := range f.proposals {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProposalRepo) Delete(id int) error {
	delete(f.proposals, id)
	return nil
}

// ----- contracts -----

type fakeContractRepo struct {
	contracts map[int]*models.Contract
	nextID    int
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: map[int]*models.Contract{}, nextID: 1}
}

func (f *fakeContractRepo) Create(ct *models.Contract) (int64, error) {
	if ct.ID == 0 {
		ct.ID = f.nextID
		f.nextID++
	}
	f.contracts[ct.ID] = ct
	return int64(ct.ID), nil
}

func (f *fakeContractRepo) GetByID(id int) (*models.Contract, error) {
	return f.contracts[id], nil
}

func (f *fakeContractRepo) GetByProposalID(proposalID int) (*models.Contract, error) {
	for _, ct := range f.contracts {
		if ct.ProposalID != nil && *ct.ProposalID == proposalID {
			return ct, nil
		}
	}
	return nil, nil
}

func (f *fakeContractRepo) List(limit, offset int) ([]*models.Contract, error) {
	var out []*models.Contract
	for _, ct := range f.contracts {
		out = append(out, ct)
	}
	return out, nil
}

func (f *fakeContractRepo) ListByClient(clientID int) ([]*models.Contract, error) {
	var out []*models.Contract
	for _, ct := range f.contracts {
		if ct.ClientID == clientID {
			out = append(out, ct)
		}
	}
	return out, nil
}

func (f *fakeContractRepo) MarkSigned(id int, signedAt time.Time) error {
	ct, ok := f.contracts[id]
	if !ok {
		return errForced
	}
	ct.Signed = true
	ct.SignedAt = &signedAt
	return nil
}

func (f *fakeContractRepo) Delete(id int) error {
	delete(f.contracts, id)
	return nil
}

// ----- reservations -----

type fakeReservationRepo struct {
	reservations map[int]*models.Reservation
	nextID       int
	errCreate    error
	deleted      []int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: map[int]*models.Reservation{}, nextID: 1}
}

func (f *fakeReservationRepo) Create(res *models.Reservation) (int64, error) {
	if f.errCreate != nil {
		return 0, f.errCreate
	}
	if res.ID == 0 {
		res.ID = f.nextID
		f.nextID++
	}
	f.reservations[res.ID] = res
	return int64(res.ID), nil
}

func (f *fakeReservationRepo) GetByID(id int) (*models.Reservation, error) {
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) GetActiveByVehicle(vehicleID int) (*models.Reservation, error) {
	for _, res := range f.reservations {
		if res.VehicleID == vehicleID && res.Status == models.ReservaAtiva {
			return res, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) List(limit, offset int) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, res := range f.reservations {
		out = append(out, res)
	}
	return out, nil
}

func (f *fakeReservationRepo) ListByClient(clientID int) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, res := range f.reservations {
		if res.ClientID == clientID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(id int, status models.ReservationStatus) error {
	res, ok := f.reservations[id]
	if !ok {
		return errForced
	}
	res.Status = status
	return nil
}

func (f *fakeReservationRepo) Delete(id int) error {
	f.deleted = append(f.deleted, id)
	delete(f.reservations, id)
	return nil
}

// ----- sales -----

type fakeSaleRepo struct {
	sales  map[int]*models.Sale
	nextID int
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[int]*models.Sale{}, nextID: 1}
}

func (f *fakeSaleRepo) Create(s *models.Sale) (int64, error) {
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	}
	f.sales[s.ID] = s
	return int64(s.ID), nil
}

func (f *fakeSaleRepo) GetByID(id int) (*models.Sale, error) {
	return f.sales[id], nil
}

func (f *fakeSaleRepo) GetByProposalID(proposalID int) (*models.Sale, error) {
	for _, s := range f.sales {
		if s.ProposalID == proposalID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(limit, offset int) ([]*models.Sale, error) {
	var out []*models.Sale
	for _, s := range f.sales {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSaleRepo) ListBySeller(sellerID, limit, offset int) ([]*models.Sale, error) {
	var out []*models.Sale
	for _, s := range f.sales {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) Delete(id int) error {
	delete(f.sales, id)
	return nil
}

// ----- banks -----

type fakeBankRepo struct {
	banks  map[int]*models.Bank
	nextID int
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{banks: map[int]*models.Bank{}, nextID: 1}
}

func (f *fakeBankRepo) add(b *models.Bank) *models.Bank {
	if b.ID == 0 {
		b.ID = f.nextID
		f.nextID++
	}
	f.banks[b.ID] = b
	return b
}

func (f *fakeBankRepo) Create(b *models.Bank) (int64, error) {
	f.add(b)
	return int64(b.ID), nil
}

func (f *fakeBankRepo) Update(b *models.Bank) error {
	f.banks[b.ID] = b
	return nil
}

func (f *fakeBankRepo) GetByID(id int) (*models.Bank, error) {
	return f.banks[id], nil
}

func (f *fakeBankRepo) List() ([]*models.Bank, error) {
	var out []*models.Bank
	for _, b := range f.banks {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBankRepo) Delete(id int) error {
	delete(f.banks, id)
	return nil
}

// ----- users -----

type fakeUserRepo struct {
	users     map[int]*models.User
	nextID    int
	errCreate error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if f.errCreate != nil {
		return f.errCreate
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`)
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Deactivate(id int) error {
	u, ok := f.users[id]
	if !ok {
		return errForced
	}
	u.Active = false
	return nil
}

func (f *fakeUserRepo) DeactivateByEmail(email string) error {
	for _, u := range f.users {
		if u.Email == email {
			u.Active = false
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id int) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	u, ok := f.users[userID]
	if !ok {
		return errForced
	}
	u.RefreshToken = &token
	u.RefreshExpiresAt = &expiresAt
	u.RefreshRevoked = false
	return nil
}

func (f *fakeUserRepo) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	for _, u := range f.users {
		if u.RefreshToken != nil && *u.RefreshToken == oldToken && !u.RefreshRevoked &&
			u.RefreshExpiresAt != nil && u.RefreshExpiresAt.After(time.Now()) {
			u.RefreshToken = &newToken
			u.RefreshExpiresAt = &newExpiresAt
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ClearRefresh(userID int) error {
	u, ok := f.users[userID]
	if !ok {
		return errForced
	}
	u.RefreshToken = nil
	u.RefreshExpiresAt = nil
	u.RefreshRevoked = true
	return nil
}

// ----- activity log -----

type fakeActivityRepo struct {
	entries []*models.ActivityLog
}

func (f *fakeActivityRepo) Create(entry *models.ActivityLog) (int64, error) {
	entry.ID = len(f.entries) + 1
	f.entries = append(f.entries, entry)
	return int64(entry.ID), nil
}

func (f *fakeActivityRepo) ListByEntity(entityType string, entityID int, limit int) ([]*models.ActivityLog, error) {
	var out []*models.ActivityLog
	for _, e := range f.entries {
		if e.EntityType == entityType && e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ----- sequences -----

type fakeSequenceRepo struct {
	last map[string]int
	err  error
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{last: map[string]int{}}
}

func (f *fakeSequenceRepo) Next(prefix string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.last[prefix]++
	return prefixNumber(prefix, f.last[prefix]), nil
}

func prefixNumber(prefix string, n int) string {
	return prefix + padNumber(n)
}

func padNumber(n int) string {
	digits := []byte("000000")
	for i := len(digits) - 1; i >= 0 && n > 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits)
}

// ----- sms confirmations -----

type fakeSMSRepo struct {
	records []*models.SMSConfirmation
	nextID  int64
}

func newFakeSMSRepo() *fakeSMSRepo {
	return &fakeSMSRepo{nextID: 1}
}

func (f *fakeSMSRepo) Create(rec *models.SMSConfirmation) (int64, error) {
	rec.ID = f.nextID
	f.nextID++
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeSMSRepo) LatestByContract(contractID int) (*models.SMSConfirmation, error) {
	var latest *models.SMSConfirmation
	for _, rec := range f.records {
		if rec.ContractID != contractID {
			continue
		}
		if latest == nil || rec.SentAt.After(latest.SentAt) {
			latest = rec
		}
	}
	return latest, nil
}

func (f *fakeSMSRepo) IncrementAttempts(id int64) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.Attempts++
			return nil
		}
	}
	return errForced
}

func (f *fakeSMSRepo) MarkConfirmed(id int64, at time.Time) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.Confirmed = true
			rec.ConfirmedAt = at
			return nil
		}
	}
	return errForced
}

func (f *fakeSMSRepo) CountSentSince(contractID int, since time.Time) (int, error) {
	n := 0
	for _, rec := range f.records {
		if rec.ContractID == contractID && !rec.SentAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeSMSRepo) DeleteByContract(contractID int) error {
	kept := f.records[:0]
	for _, rec := range f.records {
		if rec.ContractID != contractID {
			kept = append(kept, rec)
		}
	}
	f.records = kept
	return nil
}

// ----- pdf generator -----

// fakeGenerator records the last payload per document type and returns
// a stable served path.
type fakeGenerator struct {
	contract    *pdf.ContractData
	warranty    *pdf.WarrantyData
	transfer    *pdf.TransferData
	withdrawal  *pdf.WithdrawalData
	reservation *pdf.ReservationData
	receipt     *pdf.ReceiptData
	err         error
}

func (f *fakeGenerator) GenerateContract(data pdf.ContractData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.contract = &data
	return "/contrato_" + data.ContractNumber + ".pdf", nil
}

func (f *fakeGenerator) GenerateWarranty(data pdf.WarrantyData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.warranty = &data
	return "/garantia_" + data.WarrantyNumber + ".pdf", nil
}

func (f *fakeGenerator) GenerateTransfer(data pdf.TransferData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.transfer = &data
	return "/atpv_" + data.AuthorizationNumber + ".pdf", nil
}

func (f *fakeGenerator) GenerateWithdrawal(data pdf.WithdrawalData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.withdrawal = &data
	return "/desistencia_" + data.DeclarationNumber + ".pdf", nil
}

func (f *fakeGenerator) GenerateReservation(data pdf.ReservationData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.reservation = &data
	return "/reserva_" + data.ReservationNumber + ".pdf", nil
}

func (f *fakeGenerator) GenerateReceipt(data pdf.ReceiptData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.receipt = &data
	return "/recibo_" + data.ReceiptNumber + ".pdf", nil
}

// ----- notifier -----

type fakeNotifier struct {
	approved []*models.Proposal
	closed   []*models.Sale
}

func (f *fakeNotifier) ProposalApproved(p *models.Proposal) { f.approved = append(f.approved, p) }
func (f *fakeNotifier) SaleClosed(s *models.Sale)           { f.closed = append(f.closed, s) }

// compile-time interface checks
var (
	_ repositories.ClientRepository          = (*fakeClientRepo)(nil)
	_ repositories.VehicleRepository         = (*fakeVehicleRepo)(nil)
	_ repositories.ProposalRepository        = (*fakeProposalRepo)(nil)
	_ repositories.ContractRepository        = (*fakeContractRepo)(nil)
	_ repositories.ReservationRepository     = (*fakeReservationRepo)(nil)
	_ repositories.SaleRepository            = (*fakeSaleRepo)(nil)
	_ repositories.BankRepository            = (*fakeBankRepo)(nil)
	_ repositories.UserRepository            = (*fakeUserRepo)(nil)
	_ repositories.ActivityLogRepository     = (*fakeActivityRepo)(nil)
	_ repositories.SequenceRepository        = (*fakeSequenceRepo)(nil)
	_ repositories.SMSConfirmationRepository = (*fakeSMSRepo)(nil)
	_ pdf.Generator                          = (*fakeGenerator)(nil)
	_ Notifier                               = (*fakeNotifier)(nil)
)
