package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/authz"
	"autorevenda/internal/models"
	"autorevenda/internal/services"
)

type ProposalHandler struct {
	Service *services.ProposalService
}

func NewProposalHandler(service *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{Service: service}
}

type createProposalRequest struct {
	Type             string  `json:"type" binding:"required"`
	ClientID         int     `json:"client_id" binding:"required"`
	VehicleID        int     `json:"vehicle_id" binding:"required"`
	BankID           *int    `json:"bank_id"`
	VehicleValue     float64 `json:"vehicle_value" binding:"required"`
	DownPayment      float64 `json:"down_payment"`
	FinancedValue    float64 `json:"financed_value"`
	Installments     int     `json:"installments"`
	InstallmentValue float64 `json:"installment_value"`
	CET              float64 `json:"cet"`
	Notes            string  `json:"notes"`
}

// @Summary      Cria uma proposta
// @Tags         Proposals
// @Accept       json
// @Produce      json
// @Param        proposal  body      createProposalRequest  true  "Dados da proposta"
// @Success      201       {object}  models.Proposal
// @Failure      400       {object}  map[string]string
// @Router       /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Proposal{
		Type:             models.ProposalType(req.Type),
		ClientID:         req.ClientID,
		VehicleID:        req.VehicleID,
		BankID:           req.BankID,
		SellerID:         userID,
		VehicleValue:     req.VehicleValue,
		DownPayment:      req.DownPayment,
		FinancedValue:    req.FinancedValue,
		Installments:     req.Installments,
		InstallmentValue: req.InstallmentValue,
		CET:              req.CET,
		Notes:            req.Notes,
	}
	created, err := h.Service.Create(p, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProposalHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.Service.GetByID(id)
	if err != nil || p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "proposal not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProposalHandler) List(c *gin.Context) {
	userID, roleID := getUserAndRole(c)
	limit, offset := pagination(c)

	if clientID, err := strconv.Atoi(c.Query("client_id")); err == nil && clientID > 0 {
		proposals, err := h.Service.ListByClient(clientID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, proposals)
		return
	}

	var (
		proposals []*models.Proposal
		err       error
	)
	if !authz.IsAdmin(roleID) || c.Query("mine") == "1" {
		proposals, err = h.Service.ListMy(userID, limit, offset)
	} else {
		proposals, err = h.Service.List(limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

type updateProposalStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// @Summary      Atualiza o status da proposta
// @Tags         Proposals
// @Accept       json
// @Produce      json
// @Param        id      path      int                          true  "ID da proposta"
// @Param        status  body      updateProposalStatusRequest  true  "Novo status"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Router       /proposals/{id}/status [post]
func (h *ProposalHandler) UpdateStatus(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req updateProposalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.Service.UpdateStatus(id, models.ProposalStatus(req.Status), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "status updated"})
	case errors.Is(err, services.ErrProposalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrProposalClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// @Summary      Histórico de atividades da proposta
// @Tags         Proposals
// @Produce      json
// @Param        id   path      int  true  "ID da proposta"
// @Success      200  {array}   models.ActivityLog
// @Router       /proposals/{id}/history [get]
func (h *ProposalHandler) History(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	logs, err := h.Service.History(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *ProposalHandler) Delete(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id, userID); err != nil {
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "proposal deleted"})
}
