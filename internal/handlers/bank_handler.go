package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/models"
	"autorevenda/internal/services"
)

type BankHandler struct {
	Service *services.BankService
}

func NewBankHandler(service *services.BankService) *BankHandler {
	return &BankHandler{Service: service}
}

type bankRequest struct {
	Name           string  `json:"name" binding:"required"`
	CommissionRate float64 `json:"commission_rate"`
	Active         *bool   `json:"active"`
}

func bankErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrBankNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidBank), errors.Is(err, services.ErrInvalidCommission):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *BankHandler) Create(c *gin.Context) {
	var req bankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bank := &models.Bank{Name: req.Name, CommissionRate: req.CommissionRate}
	created, err := h.Service.Create(bank)
	if err != nil {
		c.JSON(bankErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BankHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	bank, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(bankErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(bankErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	var req bankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	existing.CommissionRate = req.CommissionRate
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := h.Service.Update(existing); err != nil {
		c.JSON(bankErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *BankHandler) List(c *gin.Context) {
	banks, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *BankHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bank deleted"})
}
