package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/models"
	"autorevenda/internal/services"
)

type VehicleHandler struct {
	Service *services.VehicleService
}

func NewVehicleHandler(service *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: service}
}

type vehicleRequest struct {
	Brand           string  `json:"brand" binding:"required"`
	Model           string  `json:"model" binding:"required"`
	ModelYear       int     `json:"model_year" binding:"required"`
	ManufactureYear int     `json:"manufacture_year"`
	Color           string  `json:"color"`
	Plate           string  `json:"plate"`
	Chassis         string  `json:"chassis"`
	Renavam         string  `json:"renavam"`
	Mileage         int     `json:"mileage"`
	Price           float64 `json:"price" binding:"required"`
	Status          string  `json:"status"`
}

// @Summary      Cadastra um veículo
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        vehicle  body      vehicleRequest  true  "Dados do veículo"
// @Success      201      {object}  models.Vehicle
// @Failure      400      {object}  map[string]string
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	vehicle := &models.Vehicle{
		Brand:           req.Brand,
		Model:           req.Model,
		ModelYear:       req.ModelYear,
		ManufactureYear: req.ManufactureYear,
		Color:           req.Color,
		Plate:           req.Plate,
		Chassis:         req.Chassis,
		Renavam:         req.Renavam,
		Mileage:         req.Mileage,
		Price:           req.Price,
		Status:          models.VehicleStatus(req.Status),
	}
	created, err := h.Service.Create(vehicle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *VehicleHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	vehicle, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Brand = req.Brand
	existing.Model = req.Model
	existing.ModelYear = req.ModelYear
	existing.ManufactureYear = req.ManufactureYear
	existing.Color = req.Color
	existing.Plate = req.Plate
	existing.Chassis = req.Chassis
	existing.Renavam = req.Renavam
	existing.Mileage = req.Mileage
	existing.Price = req.Price
	if req.Status != "" {
		existing.Status = models.VehicleStatus(req.Status)
	}

	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// List supports ?status=disponivel filtering.
func (h *VehicleHandler) List(c *gin.Context) {
	limit, offset := pagination(c)

	var (
		vehicles []*models.Vehicle
		err      error
	)
	if status := c.Query("status"); status != "" {
		vehicles, err = h.Service.ListByStatus(models.VehicleStatus(status), limit, offset)
	} else {
		vehicles, err = h.Service.List(limit, offset)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrVehicleInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}
