package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// SellerSales is one row of the per-seller sales aggregate.
type SellerSales struct {
	SellerID        int     `json:"seller_id"`
	SellerName      string  `json:"seller_name"`
	Count           int     `json:"count"`
	TotalValue      float64 `json:"total_value"`
	CommissionValue float64 `json:"commission_value"`
}

type ReportRepository interface {
	FunnelCounts() (map[string]int, error)
	VehicleStatusCounts() (map[string]int, error)
	SalesTotals(from, to time.Time) (count int, total, commission float64, err error)
	SalesBySeller(from, to time.Time) ([]*SellerSales, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) countsBy(query string) (map[string]int, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("report counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}

func (r *reportRepository) FunnelCounts() (map[string]int, error) {
	return r.countsBy(`SELECT funnel_stage, COUNT(*) FROM clients GROUP BY funnel_stage`)
}

func (r *reportRepository) VehicleStatusCounts() (map[string]int, error) {
	return r.countsBy(`SELECT status, COUNT(*) FROM vehicles GROUP BY status`)
}

func (r *reportRepository) SalesTotals(from, to time.Time) (int, float64, float64, error) {
	const q = `
                SELECT COUNT(*), COALESCE(SUM(total_value), 0), COALESCE(SUM(commission_value), 0)
                FROM sales
                WHERE closed_at >= $1 AND closed_at < $2
        `
	var count int
	var total, commission float64
	if err := r.db.QueryRow(q, from, to).Scan(&count, &total, &commission); err != nil {
		return 0, 0, 0, fmt.Errorf("sales totals: %w", err)
	}
	return count, total, commission, nil
}

func (r *reportRepository) SalesBySeller(from, to time.Time) ([]*SellerSales, error) {
	const q = `
                SELECT s.seller_id, COALESCE(u.name, ''), COUNT(*),
                       COALESCE(SUM(s.total_value), 0), COALESCE(SUM(s.commission_value), 0)
                FROM sales s
                LEFT JOIN users u ON u.id = s.seller_id
                WHERE s.closed_at >= $1 AND s.closed_at < $2
                GROUP BY s.seller_id, u.name
                ORDER BY SUM(s.total_value) DESC
        `
	rows, err := r.db.Query(q, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by seller: %w", err)
	}
	defer rows.Close()

	var out []*SellerSales
	for rows.Next() {
		var row SellerSales
		if err := rows.Scan(&row.SellerID, &row.SellerName, &row.Count, &row.TotalValue, &row.CommissionValue); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
