package handlers

import (
	"net/http"

	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler reports on the active session and forces reloads.
type SessionHandler struct {
	store usecase.IMaintenanceStore
}

func NewSessionHandler(store usecase.IMaintenanceStore) *SessionHandler {
	return &SessionHandler{store: store}
}

// Get returns the identity the snapshot currently belongs to.
func (h *SessionHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": h.store.Identity()})
}

// Refresh reloads every collection from persistence for the active session.
func (h *SessionHandler) Refresh(c *gin.Context) {
	if err := h.store.Refresh(c.Request.Context()); err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
