package handlers

import (
	"net/http"

	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MetricsHandler exposes the dashboard and reporting aggregates.
type MetricsHandler struct {
	metrics usecase.IMetricsUseCase
}

func NewMetricsHandler(metrics usecase.IMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

func (h *MetricsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Dashboard())
}

func (h *MetricsHandler) Reporting(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Reporting())
}
