package model

import "github.com/paulmach/orb"

// Kingdom atlas.kingdomsの1レコードを表すモデル
type Kingdom struct {
	GID       int          `json:"gid"`
	Name      string       `json:"name"`
	ClaimedBy string       `json:"claimedby"`
	Summary   *string      `json:"summary,omitempty"`
	Geometry  orb.Geometry `json:"-"`

	// Color 1回の描画内で割り当てられる表示色
	// (並び順と件数の純関数であり、永続化されない)
	Color string `json:"color,omitempty"`
}

// GetSummary 概要が存在する場合は値を、無い場合はプレースホルダを返す
func (k *Kingdom) GetSummary() string {
	if k.Summary != nil && *k.Summary != "" {
		return *k.Summary
	}
	return NoSummaryPlaceholder
}

// KingdomArea 王国ごとの面積(km²)の集計行
type KingdomArea struct {
	Kingdom string  `db:"kingdom" json:"kingdom"`
	AreaKm2 float64 `db:"area_km2" json:"area_km2"`
}
