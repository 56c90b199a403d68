package handlers

import (
	"net/http"

	request "manutencao_xpto/internal/adapter/http/dto/request"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler exposes the equipment collection of the active session.
type EquipmentHandler struct {
	store     usecase.IMaintenanceStore
	lifecycle usecase.ILifecycleUseCase
}

func NewEquipmentHandler(store usecase.IMaintenanceStore, lifecycle usecase.ILifecycleUseCase) *EquipmentHandler {
	return &EquipmentHandler{store: store, lifecycle: lifecycle}
}

// List returns the current snapshot, newest first.
func (h *EquipmentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Equipment())
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	eq, ok := h.store.EquipmentByID(c.Param("id"))
	if !ok {
		appErr := mapError(usecase.ErrEquipmentMissing)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, eq)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.store.AddEquipment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateEquipment(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectTeam applies the team selection rule to an equipment record: team
// name plus the team's default technician.
func (h *EquipmentHandler) SelectTeam(c *gin.Context) {
	var payload request.TeamSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.lifecycle.SelectTeamForEquipment(c.Request.Context(), c.Param("id"), payload.Team)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Requests returns every maintenance request raised against the equipment.
func (h *EquipmentHandler) Requests(c *gin.Context) {
	requests := h.store.RequestsByEquipment(c.Param("id"))
	if requests == nil {
		requests = []entities.MaintenanceRequest{}
	}
	c.JSON(http.StatusOK, requests)
}

// OpenRequests returns how many unresolved requests the equipment has.
func (h *EquipmentHandler) OpenRequests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.store.OpenRequestsCount(c.Param("id"))})
}
