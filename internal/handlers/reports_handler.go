package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autorevenda/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// @Summary      Resumo gerencial (funil, estoque, vendas)
// @Tags         Reports
// @Produce      json
// @Param        from  query     string  false  "Início do período (yyyy-mm-dd), padrão: 30 dias atrás"
// @Param        to    query     string  false  "Fim do período (yyyy-mm-dd), padrão: hoje"
// @Success      200   {object}  services.Summary
// @Router       /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from, expected yyyy-mm-dd"})
			return
		}
		from = d
	}
	if v := c.Query("to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to, expected yyyy-mm-dd"})
			return
		}
		// inclusive end of day
		to = d.AddDate(0, 0, 1)
	}

	data, err := h.Service.GetSummary(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}
