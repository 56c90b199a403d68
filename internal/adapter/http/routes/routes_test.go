package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"manutencao_xpto/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSessionMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("binds the header identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)

		store.EXPECT().SetIdentity(gomock.Any(), "user-1").Return(nil)

		r := gin.New()
		r.Use(sessionMiddleware(store, zap.NewNop()))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing header signs out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)

		store.EXPECT().SetIdentity(gomock.Any(), "").Return(nil)

		r := gin.New()
		r.Use(sessionMiddleware(store, zap.NewNop()))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("load failure is logged and the request continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIMaintenanceStore(ctrl)

		store.EXPECT().SetIdentity(gomock.Any(), "user-1").Return(errors.New("dynamo down"))

		core, logs := observer.New(zap.ErrorLevel)

		r := gin.New()
		r.Use(sessionMiddleware(store, zap.New(core)))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-User-Id", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if logs.FilterMessage("session load failed").Len() != 1 {
			t.Fatalf("expected one session load failure log, got %d entries", logs.Len())
		}
	})
}
