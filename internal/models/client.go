package models

import "time"

// FunnelStage is the named step of a client's progression through the
// sales pipeline.
type FunnelStage string

const (
	// StageLead is deprecated: old rows still carry it, new code must
	// write StageAtendimento. See EffectiveStage.
	StageLead        FunnelStage = "lead"
	StageAtendimento FunnelStage = "atendimento"
	StageSimulacao   FunnelStage = "simulacao"
	StageProposta    FunnelStage = "proposta"
	StageVendido     FunnelStage = "vendido"
	StagePerdido     FunnelStage = "perdido"
)

// ValidStage accepts the legacy "lead" value too, so old rows keep loading.
func ValidStage(s FunnelStage) bool {
	switch s {
	case StageLead, StageAtendimento, StageSimulacao, StageProposta, StageVendido, StagePerdido:
		return true
	}
	return false
}

// EffectiveStage remaps the deprecated "lead" stage to "atendimento" for
// grouping and display. The stored row is never mutated.
func EffectiveStage(s FunnelStage) FunnelStage {
	if s == StageLead {
		return StageAtendimento
	}
	return s
}

// Client is a prospective or actual buyer tracked through the funnel.
type Client struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	CPF         string      `json:"cpf"`
	RG          string      `json:"rg"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	FunnelStage FunnelStage `json:"funnel_stage"`
	SellerID    int         `json:"seller_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
