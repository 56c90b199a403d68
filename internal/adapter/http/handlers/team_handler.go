package handlers

import (
	"net/http"

	request "manutencao_xpto/internal/adapter/http/dto/request"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TeamHandler exposes the maintenance team collection of the active session.
type TeamHandler struct {
	store usecase.IMaintenanceStore
}

func NewTeamHandler(store usecase.IMaintenanceStore) *TeamHandler {
	return &TeamHandler{store: store}
}

func (h *TeamHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Teams())
}

// GetByName resolves a team by its display name, the key the rest of the
// engine uses when a request or equipment record points at a team.
func (h *TeamHandler) GetByName(c *gin.Context) {
	team, ok := h.store.TeamByName(c.Param("name"))
	if !ok {
		appErr := mapError(usecase.ErrTeamMissing)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var payload request.TeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.store.AddTeam(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var payload request.TeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateTeam(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
