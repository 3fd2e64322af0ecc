package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/services"
)

// SMSHandler drives signing contracts with an SMS code.
type SMSHandler struct {
	Service *services.SMSService
}

func NewSMSHandler(service *services.SMSService) *SMSHandler {
	return &SMSHandler{Service: service}
}

type sendCodeRequest struct {
	ContractID int    `json:"contract_id" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

type resendCodeRequest struct {
	ContractID int    `json:"contract_id" binding:"required"`
	Phone      string `json:"phone"`
}

type confirmCodeRequest struct {
	ContractID int    `json:"contract_id" binding:"required"`
	Code       string `json:"code" binding:"required"`
}

func smsErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrContractNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrResendThrottled), errors.Is(err, services.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrCodeExpired), errors.Is(err, services.ErrCodeInvalid):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrContractSigned):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Envia o código de assinatura por SMS
// @Tags         SMS
// @Accept       json
// @Produce      json
// @Param        send  body      sendCodeRequest  true  "Contrato e telefone"
// @Success      200   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /sms/send [post]
func (h *SMSHandler) Send(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.SendCode(req.ContractID, req.Phone); err != nil {
		c.JSON(smsErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "code sent"})
}

func (h *SMSHandler) Resend(c *gin.Context) {
	var req resendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.ResendCode(req.ContractID, req.Phone); err != nil {
		c.JSON(smsErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "code resent"})
}

// @Summary      Confirma o código e assina o contrato
// @Tags         SMS
// @Accept       json
// @Produce      json
// @Param        confirm  body      confirmCodeRequest  true  "Contrato e código"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]string
// @Router       /sms/confirm [post]
func (h *SMSHandler) Confirm(c *gin.Context) {
	var req confirmCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, err := h.Service.Confirm(req.ContractID, req.Code)
	if err != nil {
		c.JSON(smsErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": ok, "message": "contract signed"})
}

func (h *SMSHandler) Delete(c *gin.Context) {
	contractID, err := strconv.Atoi(c.Param("contract_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract_id"})
		return
	}
	if err := h.Service.DeleteConfirmations(contractID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "confirmations deleted"})
}
