package models

import "time"

type ReservationStatus string

const (
	ReservaAtiva      ReservationStatus = "ativa"
	ReservaCancelada  ReservationStatus = "cancelada"
	ReservaConvertida ReservationStatus = "convertida"
)

// Reservation places a hold on a vehicle for a bounded validity window.
type Reservation struct {
	ID                int               `json:"id"`
	ReservationNumber string            `json:"reservation_number"`
	ClientID          int               `json:"client_id"`
	VehicleID         int               `json:"vehicle_id"`
	DepositAmount     float64           `json:"deposit_amount"`
	ReservationDate   time.Time         `json:"reservation_date"`
	ValidUntil        time.Time         `json:"valid_until"`
	Status            ReservationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Expired reports whether the validity window has passed. There is no
// automatic sweep: an expired reservation stays ativa until a human
// cancels or converts it.
func (r *Reservation) Expired(now time.Time) bool {
	return r.Status == ReservaAtiva && now.After(r.ValidUntil)
}
