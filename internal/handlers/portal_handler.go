package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/services"
)

// PortalHandler serves the read-only client portal. The logged-in
// user's email is the only key into the CRM data.
type PortalHandler struct {
	Portal    *services.PortalService
	Accounts  *services.AccountService
	Contracts *services.ContractService
	FilesRoot string
}

func NewPortalHandler(portal *services.PortalService, accounts *services.AccountService, contracts *services.ContractService, filesRoot string) *PortalHandler {
	return &PortalHandler{Portal: portal, Accounts: accounts, Contracts: contracts, FilesRoot: filesRoot}
}

// email of the authenticated portal user, via their account record
func (h *PortalHandler) callerEmail(c *gin.Context) (string, bool) {
	userID, _ := getUserAndRole(c)
	user, err := h.Accounts.GetByID(userID)
	if err != nil || user == nil {
		log.Printf("[portal] account lookup failed user_id=%d err=%v", userID, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
		return "", false
	}
	return user.Email, true
}

func portalErrorStatus(err error) int {
	if errors.Is(err, services.ErrPortalNoClient) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// @Summary      Visão geral do portal do cliente
// @Tags         Portal
// @Produce      json
// @Success      200  {object}  services.PortalOverview
// @Failure      404  {object}  map[string]string
// @Router       /portal/overview [get]
func (h *PortalHandler) Overview(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	ov, err := h.Portal.Overview(email)
	if err != nil {
		c.JSON(portalErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ov)
}

func (h *PortalHandler) Proposals(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	proposals, err := h.Portal.Proposals(email)
	if err != nil {
		c.JSON(portalErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

func (h *PortalHandler) Contracts(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	contracts, err := h.Portal.Contracts(email)
	if err != nil {
		c.JSON(portalErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *PortalHandler) Reservations(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	reservations, err := h.Portal.Reservations(email)
	if err != nil {
		c.JSON(portalErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// @Summary      Baixa o PDF de um contrato do próprio cliente
// @Tags         Portal
// @Produce      application/pdf
// @Param        id  path  int  true  "ID do contrato"
// @Router       /portal/contracts/{id}/pdf [get]
func (h *PortalHandler) ContractPDF(c *gin.Context) {
	email, ok := h.callerEmail(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	owns, err := h.Portal.OwnsContract(email, id)
	if err != nil {
		c.JSON(portalErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !owns {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	served, err := h.Contracts.GeneratePDF(id)
	if err != nil {
		c.JSON(contractErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	servePDF(c, h.FilesRoot, served, true)
}
