package handlers

import (
	"net/http"

	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WorkCenterHandler exposes the read-only work center catalog.
type WorkCenterHandler struct {
	store usecase.IMaintenanceStore
}

func NewWorkCenterHandler(store usecase.IMaintenanceStore) *WorkCenterHandler {
	return &WorkCenterHandler{store: store}
}

func (h *WorkCenterHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.WorkCenters())
}
