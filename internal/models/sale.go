package models

import "time"

// Sale is the closed deal derived from an approved proposal.
type Sale struct {
	ID              int       `json:"id"`
	ProposalID      int       `json:"proposal_id"`
	ClientID        int       `json:"client_id"`
	VehicleID       int       `json:"vehicle_id"`
	SellerID        int       `json:"seller_id"`
	TotalValue      float64   `json:"total_value"`
	CommissionValue float64   `json:"commission_value"`
	ClosedAt        time.Time `json:"closed_at"`
}

// Bank is a financing partner. CommissionRate is a percentage applied
// over the sale total for the seller's commission.
type Bank struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	CommissionRate float64 `json:"commission_rate"`
	Active         bool    `json:"active"`
}
