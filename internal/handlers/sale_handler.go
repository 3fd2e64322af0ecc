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

type SaleHandler struct {
	Service *services.SaleService
}

func NewSaleHandler(service *services.SaleService) *SaleHandler {
	return &SaleHandler{Service: service}
}

type closeSaleRequest struct {
	ProposalID int `json:"proposal_id" binding:"required"`
}

// @Summary      Fecha a venda de uma proposta aprovada
// @Description  Calcula a comissão, marca o veículo como vendido e move o cliente para a etapa vendido
// @Tags         Sales
// @Accept       json
// @Produce      json
// @Param        sale  body      closeSaleRequest  true  "Proposta de origem"
// @Success      201   {object}  models.Sale
// @Failure      409   {object}  map[string]string
// @Router       /sales [post]
func (h *SaleHandler) Close(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req closeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.Service.CloseFromProposal(req.ProposalID, userID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, sale)
	case errors.Is(err, services.ErrProposalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrProposalNotApproved), errors.Is(err, services.ErrSaleExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *SaleHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	sale, err := h.Service.GetByID(id)
	if err != nil || sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) List(c *gin.Context) {
	userID, roleID := getUserAndRole(c)
	limit, offset := pagination(c)

	var (
		sales []*models.Sale
		err   error
	)
	if !authz.IsAdmin(roleID) || c.Query("mine") == "1" {
		sales, err = h.Service.ListMy(userID, limit, offset)
	} else {
		sales, err = h.Service.List(limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sales)
}
