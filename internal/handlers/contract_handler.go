package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/models"
	"autorevenda/internal/services"
)

type ContractHandler struct {
	Service   *services.ContractService
	FilesRoot string
}

func NewContractHandler(service *services.ContractService, filesRoot string) *ContractHandler {
	return &ContractHandler{Service: service, FilesRoot: filesRoot}
}

type createContractRequest struct {
	ClientID    int     `json:"client_id"`
	VehicleID   int     `json:"vehicle_id"`
	ProposalID  *int    `json:"proposal_id"`
	PaymentType string  `json:"payment_type" binding:"required"`
	TotalValue  float64 `json:"total_value"`

	DownPayment      *float64 `json:"down_payment"`
	Installments     *int     `json:"installments"`
	InstallmentValue *float64 `json:"installment_value"`
	DueDay           *int     `json:"due_day"`
	FirstDueDate     *string  `json:"first_due_date"` // yyyy-mm-dd
}

func contractErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrProposalNotFound),
		errors.Is(err, services.ErrContractNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrProposalNotApproved),
		errors.Is(err, services.ErrContractExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidPaymentType),
		errors.Is(err, services.ErrMissingParceladoTerms):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Cria um contrato
// @Description  Com proposal_id o contrato herda cliente e veículo; a proposta precisa estar aprovada
// @Tags         Contracts
// @Accept       json
// @Produce      json
// @Param        contract  body      createContractRequest  true  "Dados do contrato"
// @Success      201       {object}  models.Contract
// @Failure      400       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := &models.Contract{
		ClientID:         req.ClientID,
		VehicleID:        req.VehicleID,
		ProposalID:       req.ProposalID,
		PaymentType:      models.PaymentType(req.PaymentType),
		TotalValue:       req.TotalValue,
		DownPayment:      req.DownPayment,
		Installments:     req.Installments,
		InstallmentValue: req.InstallmentValue,
		DueDay:           req.DueDay,
	}
	if req.FirstDueDate != nil {
		d, err := time.Parse("2006-01-02", *req.FirstDueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid first_due_date, expected yyyy-mm-dd"})
			return
		}
		ct.FirstDueDate = &d
	}

	created, err := h.Service.Create(ct)
	if err != nil {
		c.JSON(contractErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ContractHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	ct, err := h.Service.GetByID(id)
	if err != nil || ct == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (h *ContractHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	contracts, err := h.Service.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contracts)
}

// @Summary      Gera o PDF do contrato
// @Tags         Contracts
// @Produce      application/pdf
// @Param        id  path  int  true  "ID do contrato"
// @Router       /contracts/{id}/pdf [get]
func (h *ContractHandler) PDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	served, err := h.Service.GeneratePDF(id)
	if err != nil {
		c.JSON(contractErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}

func (h *ContractHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contract deleted"})
}

// servePDF maps the served path ("/name.pdf") back into the files root
// and streams it inline or as an attachment.
func servePDF(c *gin.Context, filesRoot, served string, attachment bool) {
	name := filepath.Base(strings.TrimPrefix(served, "/"))
	abs := filepath.Join(filesRoot, name)

	disposition := "inline"
	if attachment {
		disposition = "attachment"
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, name))
	c.File(abs)
}
