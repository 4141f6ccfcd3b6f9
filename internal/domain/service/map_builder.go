package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"Atlas-App/internal/domain/model"
)

// WesterosTileURL ウェステロス用のカスタムタイルレイヤーURL
const WesterosTileURL = "https://cartocdn-gusc.global.ssl.fastly.net/ramirocartodb/api/v1/map/named/" +
	"tpl_756aec63_3adb_48b6_9d14_331c6cbc47cf/all/{z}/{x}/{y}.png"

// MapBuilder 王国・地名・拠点の各レイヤーを重ねたLeaflet地図のHTML断片を組み立てる
// 状態を持たない1回限りのビルドで、呼び出しごとに全体を再生成する
type MapBuilder struct {
	TileURL         string
	TileAttribution string
	ZoomStart       int
}

// NewMapBuilder MapBuilderの新しいインスタンスを作成
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{
		TileURL:         WesterosTileURL,
		TileAttribution: "CartoDB",
		ZoomStart:       5,
	}
}

// BuildMap フィルタ適用→色割り当て→中心計算→レイヤー合成を行い、
// 埋め込み可能なHTML断片を返す。ジオメトリが1つも無い場合はNoGeometryError
func (b *MapBuilder) BuildMap(kingdoms []model.Kingdom, locations []model.Location, settlements []model.Settlement, selectedKingdoms []string) (string, error) {
	// フィルタは色割り当てと中心計算より先に適用する
	// (色の分散と初期表示が絞り込み後の集合を反映するように)
	kingdoms = FilterKingdomsByName(kingdoms, selectedKingdoms)
	AssignKingdomColors(kingdoms)

	center, err := b.mapCenter(kingdoms, locations)
	if err != nil {
		return "", err
	}

	kingdomsGeoJSON, err := buildKingdomsGeoJSON(kingdoms)
	if err != nil {
		return "", err
	}

	markersJSON, err := json.Marshal(buildLocationMarkers(locations))
	if err != nil {
		return "", fmt.Errorf("地名マーカーの生成失敗: %w", err)
	}

	circlesJSON, err := json.Marshal(buildSettlementCircles(settlements))
	if err != nil {
		return "", fmt.Errorf("拠点マーカーの生成失敗: %w", err)
	}

	doc := mapDocument{
		MapID:           "map_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		CenterLat:       center.Lat(),
		CenterLng:       center.Lon(),
		Zoom:            b.ZoomStart,
		TileURL:         b.TileURL,
		TileAttribution: b.TileAttribution,
		KingdomsGeoJSON: template.JS(kingdomsGeoJSON),
		MarkersJSON:     template.JS(markersJSON),
		CirclesJSON:     template.JS(circlesJSON),
	}

	var buf bytes.Buffer
	if err := mapTemplate.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("地図テンプレートの描画失敗: %w", err)
	}

	return buf.String(), nil
}

// FilterKingdomsByName 王国名の集合で絞り込む(空のフィルタは全件を意味する)
func FilterKingdomsByName(kingdoms []model.Kingdom, names []string) []model.Kingdom {
	if len(names) == 0 {
		return kingdoms
	}

	nameSet := make(map[string]struct{}, len(names))
	for _, name := range names {
		nameSet[name] = struct{}{}
	}

	filtered := make([]model.Kingdom, 0, len(kingdoms))
	for _, kingdom := range kingdoms {
		if _, ok := nameSet[kingdom.Name]; ok {
			filtered = append(filtered, kingdom)
		}
	}
	return filtered
}

// mapCenter 王国ポリゴン全体の重心を初期表示の中心にする
// 王国が空の場合は全地名の代表点の平均にフォールバックする
func (b *MapBuilder) mapCenter(kingdoms []model.Kingdom, locations []model.Location) (orb.Point, error) {
	collection := make(orb.Collection, 0, len(kingdoms))
	for _, kingdom := range kingdoms {
		if kingdom.Geometry != nil {
			collection = append(collection, kingdom.Geometry)
		}
	}

	if len(collection) > 0 {
		// 面積重み付きの重心。ポリゴンを含まない退化した集合では
		// 面積0が返るため、その場合は代表点の平均に落とす
		if center, area := planar.CentroidArea(collection); area != 0 {
			return center, nil
		}
		points := make([]orb.Point, len(collection))
		for i, geom := range collection {
			points[i] = geom.Bound().Center()
		}
		return meanPoint(points), nil
	}

	points := make([]orb.Point, 0, len(locations))
	for _, location := range locations {
		if location.Geometry != nil {
			points = append(points, location.Point())
		}
	}
	if len(points) == 0 {
		return orb.Point{}, &model.NoGeometryError{}
	}
	return meanPoint(points), nil
}

// meanPoint 代表点の単純平均を返す(空でないことは呼び出し側が保証する)
func meanPoint(points []orb.Point) orb.Point {
	var lon, lat float64
	for _, p := range points {
		lon += p.Lon()
		lat += p.Lat()
	}
	n := float64(len(points))
	return orb.Point{lon / n, lat / n}
}

// buildKingdomsGeoJSON 王国をツールチップ・ポップアップ・色付きのFeatureCollectionに変換
func buildKingdomsGeoJSON(kingdoms []model.Kingdom) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, kingdom := range kingdoms {
		feature := geojson.NewFeature(kingdom.Geometry)
		feature.Properties = geojson.Properties{
			"name":      kingdom.Name,
			"claimedby": kingdom.ClaimedBy,
			"color":     kingdomFillColor(kingdom.Color),
			"tooltip": fmt.Sprintf("<b>Name:</b> %s<br><b>Claimed By:</b> %s",
				kingdom.Name, kingdom.ClaimedBy),
			"popup": fmt.Sprintf("<b>Name:</b> %s<br><b>Claimed By:</b> %s<br><b>Summary:</b> %s",
				kingdom.Name, kingdom.ClaimedBy, kingdom.GetSummary()),
		}
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("王国GeoJSONの生成失敗: %w", err)
	}
	return data, nil
}

// kingdomFillColor 色が割り当てられていない場合(N=0で描画された場合など)はグレー
func kingdomFillColor(color string) string {
	if color == "" {
		return "gray"
	}
	return color
}

// markerPoint クラスタリングされる地名マーカー1つ分の描画データ
type markerPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Icon  string  `json:"icon"`
	Color string  `json:"color"`
	Popup string  `json:"popup"`
}

// buildLocationMarkers 地名をtype別のアイコン・色付きマーカーに変換
// 未知のtypeはエラーにせずデフォルトのアイコン・色に落とす
func buildLocationMarkers(locations []model.Location) []markerPoint {
	markers := make([]markerPoint, 0, len(locations))
	for _, location := range locations {
		point := location.Point()
		markers = append(markers, markerPoint{
			Lat:   point.Lat(),
			Lng:   point.Lon(),
			Icon:  model.GetMarkerIcon(location.Type),
			Color: model.GetMarkerColor(location.Type),
			Popup: fmt.Sprintf("<b>Name:</b> %s<br><b>Type:</b> %s<br><b>Summary:</b> %s",
				location.Name, location.Type, location.GetSummary()),
		})
	}
	return markers
}

// circlePoint 人口に応じたサイズの拠点サークルマーカー1つ分の描画データ
type circlePoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Radius float64 `json:"radius"`
	Popup  string  `json:"popup"`
}

// buildSettlementCircles 拠点を人口スケールのサークルマーカーに変換
func buildSettlementCircles(settlements []model.Settlement) []circlePoint {
	circles := make([]circlePoint, 0, len(settlements))
	for _, settlement := range settlements {
		point := settlement.Point()
		circles = append(circles, circlePoint{
			Lat:    point.Lat(),
			Lng:    point.Lon(),
			Radius: settlement.Radius,
			Popup: fmt.Sprintf("<b>Name:</b> %s<br><b>Population:</b> %d<br><b>Type:</b> %s<br><b>Summary:</b> %s",
				settlement.Name, settlement.Population, settlement.Type, settlement.GetSummary()),
		})
	}
	return circles
}

// mapDocument 地図テンプレートに渡す描画データ
type mapDocument struct {
	MapID           string
	CenterLat       float64
	CenterLng       float64
	Zoom            int
	TileURL         string
	TileAttribution string
	KingdomsGeoJSON template.JS
	MarkersJSON     template.JS
	CirclesJSON     template.JS
}

// mapTemplate Leaflet + markercluster + awesome-markersによる自己完結のHTML断片
// レイヤー順(下から上): タイル → 王国ポリゴン → 地名クラスタ → 拠点サークル → レイヤーコントロール
var mapTemplate = template.Must(template.New("westeros_map").Parse(`<div id="{{.MapID}}" style="width: 100%; height: 600px;"></div>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css"/>
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css"/>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css"/>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.css"/>
<script src="https://cdnjs.cloudflare.com/ajax/libs/Leaflet.awesome-markers/2.0.2/leaflet.awesome-markers.js"></script>
<script>
(function() {
    var map = L.map("{{.MapID}}", {
        center: [{{.CenterLat}}, {{.CenterLng}}],
        zoom: {{.Zoom}}
    });

    L.tileLayer("{{.TileURL}}", {
        attribution: "{{.TileAttribution}}"
    }).addTo(map);

    var kingdomsData = {{.KingdomsGeoJSON}};
    var kingdomsLayer = L.geoJson(kingdomsData, {
        style: function(feature) {
            return {
                fillColor: feature.properties.color,
                color: "black",
                weight: 2,
                fillOpacity: 0.5,
                opacity: 1.0
            };
        },
        onEachFeature: function(feature, layer) {
            layer.bindTooltip(feature.properties.tooltip);
            layer.bindPopup(feature.properties.popup, {maxWidth: 300});
        }
    }).addTo(map);

    var markersData = {{.MarkersJSON}};
    var locationsLayer = L.markerClusterGroup();
    markersData.forEach(function(m) {
        var icon = L.AwesomeMarkers.icon({
            icon: m.icon,
            prefix: "fa",
            iconColor: "white",
            markerColor: m.color
        });
        L.marker([m.lat, m.lng], {icon: icon})
            .bindPopup(m.popup, {maxWidth: 300})
            .addTo(locationsLayer);
    });
    locationsLayer.addTo(map);

    var circlesData = {{.CirclesJSON}};
    var housesLayer = L.featureGroup();
    circlesData.forEach(function(c) {
        L.circleMarker([c.lat, c.lng], {
            radius: c.radius,
            color: "blue",
            fill: true,
            fillColor: "blue",
            fillOpacity: 0.6
        }).bindPopup(c.popup, {maxWidth: 300}).addTo(housesLayer);
    });
    housesLayer.addTo(map);

    L.control.layers(null, {
        "Kingdoms": kingdomsLayer,
        "Locations": locationsLayer,
        "Houses": housesLayer
    }).addTo(map);
})();
</script>
`))
