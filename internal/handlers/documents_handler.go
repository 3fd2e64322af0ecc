package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/models"
	"autorevenda/internal/services"
)

// DocumentsHandler exposes the satellite documents: warranties, ATPVs,
// withdrawal declarations and receipts.
type DocumentsHandler struct {
	Service   *services.DocumentsService
	FilesRoot string
}

func NewDocumentsHandler(service *services.DocumentsService, filesRoot string) *DocumentsHandler {
	return &DocumentsHandler{Service: service, FilesRoot: filesRoot}
}

func documentErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrDocumentNotFound),
		errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrVehicleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// ===== garantias =====

type createWarrantyRequest struct {
	ClientID       int    `json:"client_id" binding:"required"`
	VehicleID      int    `json:"vehicle_id" binding:"required"`
	ContractID     *int   `json:"contract_id"`
	CoverageMonths int    `json:"coverage_months"`
	CoverageKM     int    `json:"coverage_km"`
	CoverageTerms  string `json:"coverage_terms"`
	StartDate      string `json:"start_date"` // yyyy-mm-dd, optional
}

// @Summary      Emite um termo de garantia
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        warranty  body      createWarrantyRequest  true  "Dados da garantia"
// @Success      201       {object}  models.Warranty
// @Router       /warranties [post]
func (h *DocumentsHandler) CreateWarranty(c *gin.Context) {
	var req createWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w := &models.Warranty{
		ClientID:       req.ClientID,
		VehicleID:      req.VehicleID,
		ContractID:     req.ContractID,
		CoverageMonths: req.CoverageMonths,
		CoverageKM:     req.CoverageKM,
		CoverageTerms:  req.CoverageTerms,
	}
	if req.StartDate != "" {
		d, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected yyyy-mm-dd"})
			return
		}
		w.StartDate = d
	}
	created, err := h.Service.CreateWarranty(w)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) ListWarranties(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.ListWarranties(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentsHandler) WarrantyPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	served, err := h.Service.WarrantyPDF(id)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}

// ===== ATPV =====

type createTransferRequest struct {
	ClientID     int     `json:"client_id" binding:"required"`
	VehicleID    int     `json:"vehicle_id" binding:"required"`
	ContractID   *int    `json:"contract_id"`
	VehicleValue float64 `json:"vehicle_value"`
	Location     string  `json:"location"`
}

// @Summary      Emite uma ATPV
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        transfer  body      createTransferRequest  true  "Dados da autorização"
// @Success      201       {object}  models.TransferAuthorization
// @Router       /transfers [post]
func (h *DocumentsHandler) CreateTransfer(c *gin.Context) {
	var req createTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := &models.TransferAuthorization{
		ClientID:     req.ClientID,
		VehicleID:    req.VehicleID,
		ContractID:   req.ContractID,
		VehicleValue: req.VehicleValue,
		Location:     req.Location,
	}
	created, err := h.Service.CreateTransfer(t)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) ListTransfers(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.ListTransfers(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentsHandler) TransferPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	served, err := h.Service.TransferPDF(id)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}

// ===== desistências =====

type createWithdrawalRequest struct {
	ClientID  int    `json:"client_id" binding:"required"`
	VehicleID int    `json:"vehicle_id" binding:"required"`
	Reason    string `json:"reason"`
}

// @Summary      Registra uma declaração de desistência
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        withdrawal  body      createWithdrawalRequest  true  "Dados da desistência"
// @Success      201         {object}  models.WithdrawalDeclaration
// @Router       /withdrawals [post]
func (h *DocumentsHandler) CreateWithdrawal(c *gin.Context) {
	var req createWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	w := &models.WithdrawalDeclaration{
		ClientID:  req.ClientID,
		VehicleID: req.VehicleID,
		Reason:    req.Reason,
	}
	created, err := h.Service.CreateWithdrawal(w)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) ListWithdrawals(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.ListWithdrawals(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentsHandler) WithdrawalPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	served, err := h.Service.WithdrawalPDF(id)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}

// ===== recibos =====

type createReceiptRequest struct {
	ClientID      *int    `json:"client_id"`
	VehicleID     *int    `json:"vehicle_id"`
	ProposalID    *int    `json:"proposal_id"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
	PayerName     string  `json:"payer_name"`
	PayerCPF      string  `json:"payer_cpf"`
}

// @Summary      Emite um recibo
// @Description  O valor sai por extenso no PDF
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        receipt  body      createReceiptRequest  true  "Dados do recibo"
// @Success      201      {object}  models.Receipt
// @Router       /receipts [post]
func (h *DocumentsHandler) CreateReceipt(c *gin.Context) {
	var req createReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rc := &models.Receipt{
		ClientID:      req.ClientID,
		VehicleID:     req.VehicleID,
		ProposalID:    req.ProposalID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		PayerName:     req.PayerName,
		PayerCPF:      req.PayerCPF,
	}
	created, err := h.Service.CreateReceipt(rc)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *DocumentsHandler) ListReceipts(c *gin.Context) {
	limit, offset := pagination(c)
	out, err := h.Service.ListReceipts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *DocumentsHandler) ReceiptPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	served, err := h.Service.ReceiptPDF(id)
	if err != nil {
		c.JSON(documentErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, false)
}
