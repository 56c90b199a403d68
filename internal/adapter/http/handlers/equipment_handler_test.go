package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"manutencao_xpto/internal/adapter/http/handlers/mocks"
	"manutencao_xpto/internal/domain/entities"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEquipmentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIMaintenanceStore(ctrl)
	h := NewEquipmentHandler(store, nil)

	store.EXPECT().Equipment().Return([]entities.Equipment{{ID: "e1", Name: "CNC Lathe M1"}})

	r := gin.New()
	r.GET("/v1/equipment", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/equipment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []entities.Equipment
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(body) != 1 || body[0].Name != "CNC Lathe M1" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEquipmentHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		store.EXPECT().EquipmentByID("e1").Return(entities.Equipment{ID: "e1"}, true)

		r := gin.New()
		r.GET("/v1/equipment/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipment/e1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		store.EXPECT().EquipmentByID("ghost").Return(entities.Equipment{}, false)

		r := gin.New()
		r.GET("/v1/equipment/:id", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipment/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEquipmentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		r := gin.New()
		r.POST("/v1/equipment", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipment", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		r := gin.New()
		r.POST("/v1/equipment", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipment", bytes.NewBufferString(`{"category":"Machinery"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		store.EXPECT().AddEquipment(gomock.Any(), gomock.Any()).Return(entities.Equipment{}, usecase.ErrNoActiveSession)

		r := gin.New()
		r.POST("/v1/equipment", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipment", bytes.NewBufferString(`{"name":"CNC Lathe M1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success defaults status to Active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)
		h := NewEquipmentHandler(store, nil)

		store.EXPECT().AddEquipment(gomock.Any(), gomock.AssignableToTypeOf(entities.Equipment{})).DoAndReturn(
			func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
				if e.Status != entities.EquipmentActive {
					t.Fatalf("expected Active default, got %q", e.Status)
				}
				e.ID = "e1"
				return e, nil
			},
		)

		r := gin.New()
		r.POST("/v1/equipment", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/equipment", bytes.NewBufferString(`{"name":"CNC Lathe M1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestEquipmentHandler_SelectTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIMaintenanceStore(ctrl)
	lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewEquipmentHandler(store, lifecycle)

	lifecycle.EXPECT().SelectTeamForEquipment(gomock.Any(), "e1", "IT Support").Return(
		entities.Equipment{ID: "e1", Team: "IT Support", Technician: "Priya Sharma"}, nil,
	)

	r := gin.New()
	r.PATCH("/v1/equipment/:id/team", h.SelectTeam)

	req := httptest.NewRequest(http.MethodPatch, "/v1/equipment/e1/team", bytes.NewBufferString(`{"team":"IT Support"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body entities.Equipment
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body.Technician != "Priya Sharma" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEquipmentHandler_Requests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockIMaintenanceStore(ctrl)
	h := NewEquipmentHandler(store, nil)

	store.EXPECT().RequestsByEquipment("e1").Return(nil)
	store.EXPECT().OpenRequestsCount("e1").Return(3)

	r := gin.New()
	r.GET("/v1/equipment/:id/requests", h.Requests)
	r.GET("/v1/equipment/:id/open-requests", h.OpenRequests)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/equipment/e1/requests", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/equipment/e1/open-requests", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body["count"] != 3 {
		t.Fatalf("expected count 3, got %+v", body)
	}
}
