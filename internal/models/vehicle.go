package models

import "time"

type VehicleStatus string

const (
	VehicleDisponivel VehicleStatus = "disponivel"
	VehicleReservado  VehicleStatus = "reservado"
	VehicleVendido    VehicleStatus = "vendido"
)

func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleDisponivel, VehicleReservado, VehicleVendido:
		return true
	}
	return false
}

// Vehicle is a unit of inventory.
type Vehicle struct {
	ID              int           `json:"id"`
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	ModelYear       int           `json:"model_year"`
	ManufactureYear int           `json:"manufacture_year"`
	Color           string        `json:"color"`
	Plate           string        `json:"plate"`
	Chassis         string        `json:"chassis"`
	Renavam         string        `json:"renavam"`
	Mileage         int           `json:"mileage"`
	Price           float64       `json:"price"`
	Status          VehicleStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
