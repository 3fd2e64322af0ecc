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

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

type createClientRequest struct {
	Name    string `json:"name" binding:"required"`
	CPF     string `json:"cpf"`
	RG      string `json:"rg"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type updateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	CPF     string `json:"cpf"`
	RG      string `json:"rg"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// @Summary      Cadastra um cliente
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        client  body      createClientRequest  true  "Dados do cliente"
// @Success      201     {object}  models.Client
// @Failure      400     {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := &models.Client{
		Name:     req.Name,
		CPF:      req.CPF,
		RG:       req.RG,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		SellerID: userID,
	}
	id, err := h.Service.Create(client)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = int(id)
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.Service.GetByID(id)
	if err != nil || client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	existing, err := h.Service.GetByID(id)
	if err != nil || existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.Name = req.Name
	existing.CPF = req.CPF
	existing.RG = req.RG
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := h.Service.Update(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// List returns all clients for admins and only own clients for
// vendedores (use ?mine=1 to force the narrow view).
func (h *ClientHandler) List(c *gin.Context) {
	userID, roleID := getUserAndRole(c)
	limit, offset := pagination(c)

	if name := c.Query("name"); name != "" {
		clients, err := h.Service.FindByName(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, clients)
		return
	}

	var (
		clients []*models.Client
		err     error
	)
	if !authz.IsAdmin(roleID) || c.Query("mine") == "1" {
		clients, err = h.Service.ListMy(userID, limit, offset)
	} else {
		clients, err = h.Service.List(limit, offset)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

type moveStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// @Summary      Move o cliente no funil
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        id     path      int               true  "ID do cliente"
// @Param        stage  body      moveStageRequest  true  "Etapa de destino"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /clients/{id}/stage [post]
func (h *ClientHandler) MoveStage(c *gin.Context) {
	userID, roleID := getUserAndRole(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req moveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.Service.MoveStage(id, models.FunnelStage(req.Stage), userID, roleID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "stage updated"})
	case errors.Is(err, services.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// @Summary      Funil de vendas agrupado por etapa
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  map[string][]models.Client
// @Router       /clients/funnel [get]
func (h *ClientHandler) Funnel(c *gin.Context) {
	summary, err := h.Service.FunnelSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
