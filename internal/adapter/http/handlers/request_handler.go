package handlers

import (
	"net/http"

	request "manutencao_xpto/internal/adapter/http/dto/request"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the maintenance request lifecycle: CRUD plus the
// stage and selection operations.
type RequestHandler struct {
	store     usecase.IMaintenanceStore
	lifecycle usecase.ILifecycleUseCase
}

func NewRequestHandler(store usecase.IMaintenanceStore, lifecycle usecase.ILifecycleUseCase) *RequestHandler {
	return &RequestHandler{store: store, lifecycle: lifecycle}
}

func (h *RequestHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Requests())
}

func (h *RequestHandler) Get(c *gin.Context) {
	req, ok := h.store.RequestByID(c.Param("id"))
	if !ok {
		appErr := mapError(usecase.ErrRequestMissing)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, req)
}

// Create runs the full creation pipeline: stage defaulting, equipment
// autofill and the default technician rule, then the store insert.
func (h *RequestHandler) Create(c *gin.Context) {
	var payload request.MaintenanceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.lifecycle.CreateRequest(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces the request's fields. The payload may omit the stage, in
// which case the current one is kept; anything outside the four lifecycle
// stages is rejected.
func (h *RequestHandler) Update(c *gin.Context) {
	var payload request.MaintenanceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	current, ok := h.store.RequestByID(c.Param("id"))
	if !ok {
		appErr := mapError(usecase.ErrRequestMissing)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	req := payload.ToEntity()
	if req.Stage == "" {
		req.Stage = current.Stage
	}
	if !req.Stage.Valid() {
		appErr := mapError(usecase.ErrInvalidStage)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateRequest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveStage moves a request to another lifecycle stage, leaving every other
// field untouched.
func (h *RequestHandler) MoveStage(c *gin.Context) {
	var payload request.StageMoveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	moved, err := h.lifecycle.MoveRequestToStage(c.Request.Context(), c.Param("id"), entities.Stage(payload.Stage))
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, moved)
}

// SelectEquipment re-points a request at an equipment record, pulling in
// its name, category and team.
func (h *RequestHandler) SelectEquipment(c *gin.Context) {
	var payload request.EquipmentSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.lifecycle.SelectEquipmentForRequest(c.Request.Context(), c.Param("id"), payload.EquipmentID)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SelectTeam assigns a team to a request together with the team's default
// technician.
func (h *RequestHandler) SelectTeam(c *gin.Context) {
	var payload request.TeamSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.lifecycle.SelectTeamForRequest(c.Request.Context(), c.Param("id"), payload.Team)
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, updated)
}
