package model

// NoSummaryPlaceholder 概要が無いレコードのポップアップに表示する固定文言
const NoSummaryPlaceholder = "No summary available."

// マーカー表示のデフォルト値(未知のtypeはエラーにせずこの値に落とす)
const (
	DefaultMarkerColor = "gray"
	DefaultMarkerIcon  = "info-circle"
)

// LocationTypeColorMapping 地名typeからマーカー色へのマッピング
var LocationTypeColorMapping = map[string]string{
	"Castle":   "red",
	"City":     "blue",
	"Fortress": "green",
	"Keep":     "orange",
}

// LocationTypeIconMapping 地名typeからFont Awesomeアイコン名へのマッピング
var LocationTypeIconMapping = map[string]string{
	"Castle":   "shield-alt",
	"City":     "building",
	"Fortress": "archway",
	"Keep":     "home",
}

// GetMarkerColor 地名typeからマーカー色を取得する(未知のtypeはデフォルト)
func GetMarkerColor(locationType string) string {
	if color, ok := LocationTypeColorMapping[locationType]; ok {
		return color
	}
	return DefaultMarkerColor
}

// GetMarkerIcon 地名typeからアイコン名を取得する(未知のtypeはデフォルト)
func GetMarkerIcon(locationType string) string {
	if icon, ok := LocationTypeIconMapping[locationType]; ok {
		return icon
	}
	return DefaultMarkerIcon
}
