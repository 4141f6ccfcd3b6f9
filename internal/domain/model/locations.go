package model

import "github.com/paulmach/orb"

// Location atlas.locationsの1レコードを表すモデル
// ジオメトリはWGS84(経度・緯度)のorbジオメトリとして保持する
type Location struct {
	GID      int          `json:"gid"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Summary  *string      `json:"summary,omitempty"`
	Geometry orb.Geometry `json:"-"`
}

// GetSummary 概要が存在する場合は値を、無い場合はプレースホルダを返す
func (l *Location) GetSummary() string {
	if l.Summary != nil && *l.Summary != "" {
		return *l.Summary
	}
	return NoSummaryPlaceholder
}

// Point ジオメトリの代表点を返す(ポイント以外はバウンディングボックスの中心)
func (l *Location) Point() orb.Point {
	if p, ok := l.Geometry.(orb.Point); ok {
		return p
	}
	return l.Geometry.Bound().Center()
}

// Settlement 拠点(typeがCastle/CityのLocation)に人口と表示半径を加えたモデル
// 人口は実データが無いため固定シードで合成される(再現性の契約)
type Settlement struct {
	Location
	Population int     `json:"population"`
	Radius     float64 `json:"radius"`
}
