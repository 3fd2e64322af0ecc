package models

import "time"

type ProposalStatus string

const (
	ProposalPendente  ProposalStatus = "pendente"
	ProposalAprovada  ProposalStatus = "aprovada"
	ProposalRecusada  ProposalStatus = "recusada"
	ProposalCancelada ProposalStatus = "cancelada"
)

func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalPendente, ProposalAprovada, ProposalRecusada, ProposalCancelada:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s ProposalStatus) Terminal() bool {
	return s == ProposalAprovada || s == ProposalRecusada || s == ProposalCancelada
}

type ProposalType string

const (
	PropostaAVista       ProposalType = "avista"
	PropostaFinanciada   ProposalType = "financiamento"
	PropostaFinancDireto ProposalType = "financiamento_proprio"
)

// Proposal is a priced offer (cash or financed) for a specific vehicle.
type Proposal struct {
	ID               int            `json:"id"`
	ProposalNumber   string         `json:"proposal_number"`
	Status           ProposalStatus `json:"status"`
	Type             ProposalType   `json:"type"`
	ClientID         int            `json:"client_id"`
	VehicleID        int            `json:"vehicle_id"`
	BankID           *int           `json:"bank_id,omitempty"`
	SellerID         int            `json:"seller_id"`
	VehicleValue     float64        `json:"vehicle_value"`
	DownPayment      float64        `json:"down_payment"`
	FinancedValue    float64        `json:"financed_value"`
	Installments     int            `json:"installments"`
	InstallmentValue float64        `json:"installment_value"`
	// CET: custo efetivo total (annual, percent) shown on simulations.
	CET       float64   `json:"cet"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
