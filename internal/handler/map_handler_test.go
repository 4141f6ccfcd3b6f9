package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"Atlas-App/internal/domain/model"
)

// fakeMapService テスト用のMapService実装
type fakeMapService struct {
	html             string
	err              error
	receivedKingdoms []string
}

func (f *fakeMapService) BuildWesterosMap(ctx context.Context, selectedKingdoms []string) (string, error) {
	f.receivedKingdoms = selectedKingdoms
	return f.html, f.err
}

func setupMapRouter(service *fakeMapService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/map", NewMapHandler(service).GetMap)
	return router
}

func TestMapHandler_GetMap(t *testing.T) {
	t.Run("HTML断片をtext/htmlで返す", func(t *testing.T) {
		service := &fakeMapService{html: `<div id="map_abc"></div>`}
		router := setupMapRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/map", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Equal(t, `<div id="map_abc"></div>`, w.Body.String())
	})

	t.Run("kingdomsパラメータがフィルタとして渡される", func(t *testing.T) {
		service := &fakeMapService{html: "<div></div>"}
		router := setupMapRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/map?kingdoms=The%20North,Dorne", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"The North", "Dorne"}, service.receivedKingdoms)
	})

	t.Run("空のkingdomsパラメータは絞り込みなし", func(t *testing.T) {
		service := &fakeMapService{html: "<div></div>"}
		router := setupMapRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/map?kingdoms=", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, service.receivedKingdoms)
	})

	t.Run("NoGeometryErrorは404になる", func(t *testing.T) {
		service := &fakeMapService{err: &model.NoGeometryError{}}
		router := setupMapRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/map", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "no_geometry")
	})

	t.Run("その他のエラーは500になる", func(t *testing.T) {
		service := &fakeMapService{err: errors.New("query failed")}
		router := setupMapRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/map", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
	})
}
