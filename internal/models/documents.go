package models

import "time"

// Receipt records a payment. Client/vehicle/proposal references are
// optional: a receipt can be issued standalone.
type Receipt struct {
	ID            int       `json:"id"`
	ReceiptNumber string    `json:"receipt_number"`
	ClientID      *int      `json:"client_id,omitempty"`
	VehicleID     *int      `json:"vehicle_id,omitempty"`
	ProposalID    *int      `json:"proposal_id,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Reference     string    `json:"reference"`
	PayerName     string    `json:"payer_name"`
	PayerCPF      string    `json:"payer_cpf"`
	IssuedAt      time.Time `json:"issued_at"`
}

type Warranty struct {
	ID             int       `json:"id"`
	WarrantyNumber string    `json:"warranty_number"`
	ClientID       int       `json:"client_id"`
	VehicleID      int       `json:"vehicle_id"`
	ContractID     *int      `json:"contract_id,omitempty"`
	CoverageMonths int       `json:"coverage_months"`
	CoverageKM     int       `json:"coverage_km"`
	CoverageTerms  string    `json:"coverage_terms"`
	StartDate      time.Time `json:"start_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// TransferAuthorization is the ATPV (autorização de transferência de
// propriedade de veículo).
type TransferAuthorization struct {
	ID                  int       `json:"id"`
	AuthorizationNumber string    `json:"authorization_number"`
	ClientID            int       `json:"client_id"`
	VehicleID           int       `json:"vehicle_id"`
	ContractID          *int      `json:"contract_id,omitempty"`
	VehicleValue        float64   `json:"vehicle_value"`
	Location            string    `json:"location"`
	IssuedAt            time.Time `json:"issued_at"`
}

// WithdrawalDeclaration records a client giving up a purchase.
type WithdrawalDeclaration struct {
	ID                int       `json:"id"`
	DeclarationNumber string    `json:"declaration_number"`
	ClientID          int       `json:"client_id"`
	VehicleID         int       `json:"vehicle_id"`
	Reason            string    `json:"reason"`
	IssuedAt          time.Time `json:"issued_at"`
}
