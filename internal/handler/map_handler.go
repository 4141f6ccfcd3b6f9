package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Atlas-App/internal/application"
	"Atlas-App/internal/domain/model"
)

// MapHandler ウェステロス地図に関するHTTPハンドラー
type MapHandler struct {
	mapService application.MapService
}

// NewMapHandler MapHandlerの新しいインスタンスを作成
func NewMapHandler(mapService application.MapService) *MapHandler {
	return &MapHandler{
		mapService: mapService,
	}
}

// GetMap GET /api/map - 地図のHTML断片を取得
// kingdomsクエリパラメータで王国を絞り込める(空は全件)
func (h *MapHandler) GetMap(c *gin.Context) {
	selectedKingdoms := parseKingdomsParam(c)

	html, err := h.mapService.BuildWesterosMap(c.Request.Context(), selectedKingdoms)
	if err != nil {
		// ジオメトリが1つも無い場合は中心を決められないため404として返す
		var noGeometry *model.NoGeometryError
		if errors.As(err, &noGeometry) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "no_geometry",
				"message": "No usable geometry found to center the map: " + err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to build map: " + err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
