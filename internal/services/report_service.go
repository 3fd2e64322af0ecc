package services

import (
	"time"

	"autorevenda/internal/models"
	"autorevenda/internal/repositories"
)

type ReportService struct {
	Repo repositories.ReportRepository
}

func NewReportService(repo repositories.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// Summary is the management dashboard payload.
type Summary struct {
	Funnel      map[string]int              `json:"funnel"`
	Vehicles    map[string]int              `json:"vehicles"`
	Sales       SalesTotals                 `json:"sales"`
	TopSellers  []*repositories.SellerSales `json:"top_sellers"`
	PeriodStart time.Time                   `json:"period_start"`
	PeriodEnd   time.Time                   `json:"period_end"`
}

type SalesTotals struct {
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Commission float64 `json:"commission"`
}

// GetSummary aggregates funnel, stock and sales numbers for the given
// period. Legacy "lead" rows are folded into atendimento.
func (s *ReportService) GetSummary(from, to time.Time) (*Summary, error) {
	funnel, err := s.Repo.FunnelCounts()
	if err != nil {
		return nil, err
	}
	if n, ok := funnel[string(models.StageLead)]; ok {
		funnel[string(models.StageAtendimento)] += n
		delete(funnel, string(models.StageLead))
	}

	vehicles, err := s.Repo.VehicleStatusCounts()
	if err != nil {
		return nil, err
	}

	count, total, commission, err := s.Repo.SalesTotals(from, to)
	if err != nil {
		return nil, err
	}

	sellers, err := s.Repo.SalesBySeller(from, to)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Funnel:      funnel,
		Vehicles:    vehicles,
		Sales:       SalesTotals{Count: count, Total: total, Commission: commission},
		TopSellers:  sellers,
		PeriodStart: from,
		PeriodEnd:   to,
	}, nil
}
