package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/services"
)

type ReservationHandler struct {
	Service   *services.ReservationService
	FilesRoot string
}

func NewReservationHandler(service *services.ReservationService, filesRoot string) *ReservationHandler {
	return &ReservationHandler{Service: service, FilesRoot: filesRoot}
}

type createReservationRequest struct {
	ClientID      int     `json:"client_id" binding:"required"`
	VehicleID     int     `json:"vehicle_id" binding:"required"`
	DepositAmount float64 `json:"deposit_amount"`
}

func reservationErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrVehicleNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrVehicleUnavailable),
		errors.Is(err, services.ErrReservationClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Reserva um veículo
// @Description  Trava o veículo como reservado por 10 dias
// @Tags         Reservations
// @Accept       json
// @Produce      json
// @Param        reservation  body      createReservationRequest  true  "Dados da reserva"
// @Success      201          {object}  models.Reservation
// @Failure      404          {object}  map[string]string
// @Failure      409          {object}  map[string]string
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Service.Create(req.ClientID, req.VehicleID, req.DepositAmount)
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.Service.GetByID(id)
	if err != nil || res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	reservations, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// @Summary      Cancela a reserva e libera o veículo
// @Tags         Reservations
// @Produce      json
// @Param        id   path      int  true  "ID da reserva"
// @Success      200  {object}  map[string]string
// @Router       /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Cancel(id); err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled"})
}

// @Summary      Converte a reserva em venda (veículo vendido)
// @Tags         Reservations
// @Produce      json
// @Param        id   path      int  true  "ID da reserva"
// @Success      200  {object}  map[string]string
// @Router       /reservations/{id}/convert [post]
func (h *ReservationHandler) Convert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Convert(id); err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation converted"})
}

// @Summary      Gera o termo de reserva em PDF
// @Tags         Reservations
// @Produce      application/pdf
// @Param        id  path  int  true  "ID da reserva"
// @Router       /reservations/{id}/pdf [get]
func (h *ReservationHandler) PDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	served, err := h.Service.GeneratePDF(id)
	if err != nil {
		c.JSON(reservationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}
