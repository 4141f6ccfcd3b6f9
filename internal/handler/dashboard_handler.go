package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"Atlas-App/internal/application"
	"Atlas-App/internal/domain/model"
)

// DashboardHandler ダッシュボードの集計・グラフに関するHTTPハンドラー
type DashboardHandler struct {
	dashboardService application.DashboardService
}

// NewDashboardHandler DashboardHandlerの新しいインスタンスを作成
func NewDashboardHandler(dashboardService application.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetOverview GET /api/overview - 家の総数と総人口を取得
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get overview: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetKingdoms GET /api/kingdoms - フィルタUI用の王国名一覧を取得
func (h *DashboardHandler) GetKingdoms(c *gin.Context) {
	kingdoms, err := h.dashboardService.GetKingdomList(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get kingdom list: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"kingdoms": kingdoms})
}

// GetHouseCountChart GET /api/charts/houses - 王国ごとの家の数のグラフを取得
func (h *DashboardHandler) GetHouseCountChart(c *gin.Context) {
	plotType, ok := parsePlotType(c)
	if !ok {
		return
	}

	spec, err := h.dashboardService.GetHouseCountChart(c.Request.Context(), parseKingdomsParam(c), plotType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build house count chart: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// GetPopulationChart GET /api/charts/population - 王国ごとの人口のグラフを取得
func (h *DashboardHandler) GetPopulationChart(c *gin.Context) {
	plotType, ok := parsePlotType(c)
	if !ok {
		return
	}

	grouping := c.DefaultQuery("grouping", model.GroupingModern)
	if !model.IsValidGrouping(grouping) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "grouping must be 'modern' or 'historical'",
		})
		return
	}

	spec, err := h.dashboardService.GetPopulationChart(c.Request.Context(), parseKingdomsParam(c), plotType, grouping)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build population chart: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// GetAreaChart GET /api/charts/area - 王国ごとの面積のグラフを取得
func (h *DashboardHandler) GetAreaChart(c *gin.Context) {
	plotType, ok := parsePlotType(c)
	if !ok {
		return
	}

	spec, err := h.dashboardService.GetAreaChart(c.Request.Context(), parseKingdomsParam(c), plotType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build area chart: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, spec)
}

// parseKingdomsParam kingdomsクエリパラメータをカンマ区切りで解析する
// 空のパラメータは「絞り込みなし(全件)」を意味する
func parseKingdomsParam(c *gin.Context) []string {
	raw := c.Query("kingdoms")
	if raw == "" {
		return nil
	}

	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// parsePlotType plot_typeクエリパラメータを検証付きで解析する
// 不正な値の場合はエラーレスポンスを書き込んでfalseを返す
func parsePlotType(c *gin.Context) (string, bool) {
	plotType := c.DefaultQuery("plot_type", model.PlotTypeBar)
	if !model.IsValidPlotType(plotType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "plot_type must be 'bar' or 'pie'",
		})
		return "", false
	}
	return plotType, true
}
