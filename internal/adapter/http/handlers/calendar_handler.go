package handlers

import (
	"net/http"
	"time"

	response "manutencao_xpto/internal/adapter/http/dto/response"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalendarHandler projects scheduled maintenance requests onto a calendar.
type CalendarHandler struct {
	store usecase.IMaintenanceStore
	now   func() time.Time
}

func NewCalendarHandler(store usecase.IMaintenanceStore) *CalendarHandler {
	return &CalendarHandler{store: store, now: time.Now}
}

// WithClock fixes the reference time used for overdue coloring.
func (h *CalendarHandler) WithClock(now func() time.Time) *CalendarHandler {
	h.now = now
	return h
}

// Events returns one event per request with a scheduled date. Requests
// without one never show on the calendar.
func (h *CalendarHandler) Events(c *gin.Context) {
	events := entities.ToCalendarEvents(h.store.Requests())
	c.JSON(http.StatusOK, response.FromCalendarEvents(events, h.now()))
}
