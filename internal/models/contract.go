package models

import "time"

type PaymentType string

const (
	PagamentoAVista    PaymentType = "avista"
	PagamentoParcelado PaymentType = "parcelado"
)

// Contract is the purchase contract, optionally derived from a proposal.
// The parcelado fields are nullable: they are required only when
// PaymentType is parcelado (validated at the service layer).
type Contract struct {
	ID             int         `json:"id"`
	ContractNumber string      `json:"contract_number"`
	ClientID       int         `json:"client_id"`
	VehicleID      int         `json:"vehicle_id"`
	ProposalID     *int        `json:"proposal_id,omitempty"`
	PaymentType    PaymentType `json:"payment_type"`
	TotalValue     float64     `json:"total_value"`

	DownPayment      *float64   `json:"down_payment,omitempty"`
	Installments     *int       `json:"installments,omitempty"`
	InstallmentValue *float64   `json:"installment_value,omitempty"`
	DueDay           *int       `json:"due_day,omitempty"`
	FirstDueDate     *time.Time `json:"first_due_date,omitempty"`

	Signed   bool       `json:"signed"`
	SignedAt *time.Time `json:"signed_at,omitempty"`
	// optional signature images embedded into the PDF
	ClientSignaturePath string `json:"client_signature_path,omitempty"`
	VendorSignaturePath string `json:"vendor_signature_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
