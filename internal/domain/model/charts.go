package model

// PlotTypeConstants グラフの種類
const (
	PlotTypeBar = "bar"
	PlotTypePie = "pie"
)

// PopulationGroupingConstants 人口集計の区分け
const (
	// GroupingModern 現代の地域名による区分け(The North, The Valeなど)
	GroupingModern = "modern"
	// GroupingHistorical 征服戦争以前の七王国による区分け(Kingdom of the Northなど)
	GroupingHistorical = "historical"
)

// ChartSpec フロントエンドがそのまま描画できるグラフ仕様
// UIフレームワークの出力スロットにバインドされる純粋なデータ
type ChartSpec struct {
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	XLabel string    `json:"x_label"`
	YLabel string    `json:"y_label"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
	Height int       `json:"height"`
}

// DefaultKingdomColor マッピングに無い王国のグラフ色
const DefaultKingdomColor = "#b5b5b5"

// KingdomColorMapping グラフ用の固定王国カラー
// (地図のレインボー割り当てとは別で、グラフ間で色を揃えるための固定表)
var KingdomColorMapping = map[string]string{
	"The North":       "#1f77b4",
	"The Reach":       "#ff7f0e",
	"Dorne":           "#2ca02c",
	"The Westerlands": "#d62728",
	"The Riverlands":  "#9467bd",
	"The Vale":        "#8c564b",
	"Iron Islands":    "#e377c2",
	"The Stormlands":  "#7f7f7f",
	"The Crownlands":  "#ffff00",
	"Gift":            "#17becf",
	"Other Regions":   "#b5b5b5",
}

// GetKingdomColor 王国名からグラフ色を取得する(未知の王国はデフォルト)
func GetKingdomColor(name string) string {
	if color, ok := KingdomColorMapping[name]; ok {
		return color
	}
	return DefaultKingdomColor
}

// IsValidPlotType 指定されたグラフ種別が有効かチェック
func IsValidPlotType(plotType string) bool {
	return plotType == PlotTypeBar || plotType == PlotTypePie
}

// IsValidGrouping 指定された人口集計区分が有効かチェック
func IsValidGrouping(grouping string) bool {
	return grouping == GroupingModern || grouping == GroupingHistorical
}
