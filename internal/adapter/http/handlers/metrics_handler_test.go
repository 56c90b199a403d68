package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"manutencao_xpto/internal/adapter/http/handlers/mocks"
	"manutencao_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMetricsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mocks.NewMockIMetricsUseCase(ctrl)
		h := NewMetricsHandler(metrics)

		metrics.EXPECT().Dashboard().Return(usecase.DashboardMetrics{
			OpenRequests: 4, OverdueRequests: 1, CriticalEquipment: 2, TechnicianLoad: 50,
		})

		r := gin.New()
		r.GET("/v1/metrics/dashboard", h.Dashboard)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/metrics/dashboard", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.DashboardMetrics
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body.OpenRequests != 4 || body.TechnicianLoad != 50 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("reporting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		metrics := mocks.NewMockIMetricsUseCase(ctrl)
		h := NewMetricsHandler(metrics)

		metrics.EXPECT().Reporting().Return(usecase.ReportingMetrics{
			TotalRequests: 7, AvgResolutionDays: 6.5, ComplianceRate: 75, CriticalPending: 2,
		})

		r := gin.New()
		r.GET("/v1/metrics/reporting", h.Reporting)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/metrics/reporting", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body usecase.ReportingMetrics
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if body.AvgResolutionDays != 6.5 || body.ComplianceRate != 75 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
