package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Atlas-App/internal/domain/model"
)

// fakeDashboardService テスト用のDashboardService実装
type fakeDashboardService struct {
	overview         *model.DashboardOverview
	kingdoms         []string
	spec             *model.ChartSpec
	err              error
	receivedKingdoms []string
	receivedPlotType string
	receivedGrouping string
}

func (f *fakeDashboardService) GetOverview(ctx context.Context) (*model.DashboardOverview, error) {
	return f.overview, f.err
}

func (f *fakeDashboardService) GetKingdomList(ctx context.Context) ([]string, error) {
	return f.kingdoms, f.err
}

func (f *fakeDashboardService) GetHouseCountChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error) {
	f.receivedKingdoms = selectedKingdoms
	f.receivedPlotType = plotType
	return f.spec, f.err
}

func (f *fakeDashboardService) GetPopulationChart(ctx context.Context, selectedKingdoms []string, plotType, grouping string) (*model.ChartSpec, error) {
	f.receivedKingdoms = selectedKingdoms
	f.receivedPlotType = plotType
	f.receivedGrouping = grouping
	return f.spec, f.err
}

func (f *fakeDashboardService) GetAreaChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error) {
	f.receivedKingdoms = selectedKingdoms
	f.receivedPlotType = plotType
	return f.spec, f.err
}

func setupDashboardRouter(service *fakeDashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDashboardHandler(service)
	router.GET("/api/overview", h.GetOverview)
	router.GET("/api/kingdoms", h.GetKingdoms)
	router.GET("/api/charts/houses", h.GetHouseCountChart)
	router.GET("/api/charts/population", h.GetPopulationChart)
	router.GET("/api/charts/area", h.GetAreaChart)
	return router
}

func TestDashboardHandler_GetOverview(t *testing.T) {
	service := &fakeDashboardService{
		overview: &model.DashboardOverview{TotalHouses: 42, TotalPopulation: 1500},
	}
	router := setupDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var overview model.DashboardOverview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 42, overview.TotalHouses)
	assert.Equal(t, 1500, overview.TotalPopulation)
}

func TestDashboardHandler_GetKingdoms(t *testing.T) {
	service := &fakeDashboardService{kingdoms: []string{"Dorne", "The North"}}
	router := setupDashboardRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/kingdoms", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dorne")
}

func TestDashboardHandler_ChartParameters(t *testing.T) {
	t.Run("kingdomsとplot_typeがサービスに渡される", func(t *testing.T) {
		service := &fakeDashboardService{spec: &model.ChartSpec{Type: model.PlotTypePie}}
		router := setupDashboardRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/charts/houses?kingdoms=Dorne&plot_type=pie", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Dorne"}, service.receivedKingdoms)
		assert.Equal(t, model.PlotTypePie, service.receivedPlotType)
	})

	t.Run("plot_typeのデフォルトはbar", func(t *testing.T) {
		service := &fakeDashboardService{spec: &model.ChartSpec{Type: model.PlotTypeBar}}
		router := setupDashboardRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/charts/area", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.PlotTypeBar, service.receivedPlotType)
	})

	t.Run("不正なplot_typeは400になる", func(t *testing.T) {
		service := &fakeDashboardService{spec: &model.ChartSpec{}}
		router := setupDashboardRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/charts/houses?plot_type=scatter", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_parameter")
	})

	t.Run("人口グラフはgroupingを受け付ける", func(t *testing.T) {
		service := &fakeDashboardService{spec: &model.ChartSpec{}}
		router := setupDashboardRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/charts/population?grouping=historical", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, model.GroupingHistorical, service.receivedGrouping)
	})

	t.Run("不正なgroupingは400になる", func(t *testing.T) {
		service := &fakeDashboardService{spec: &model.ChartSpec{}}
		router := setupDashboardRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/charts/population?grouping=ancient", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
