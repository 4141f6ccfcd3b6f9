package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"Atlas-App/internal/domain/model"
)

// ParseWKT Well-Known Text文字列をorbジオメトリに変換する
// 座標はWGS84の経度・緯度順。解析に失敗した場合はレコード名付きの
// GeometryParseErrorを返し、スキップか中断かの判断は呼び出し側に委ねる
func ParseWKT(name, wktText string) (orb.Geometry, error) {
	geom, err := wkt.Unmarshal(wktText)
	if err != nil {
		return nil, &model.GeometryParseError{
			Name: name,
			WKT:  wktText,
			Err:  err,
		}
	}
	return geom, nil
}

// locationRow atlas.locationsのクエリ結果を受け取るための構造体
type locationRow struct {
	GID     int     `db:"gid"`
	Name    string  `db:"name"`
	Type    string  `db:"type"`
	Summary *string `db:"summary"`
	GeomWKT string  `db:"geom_wkt"`
}

// ToLocation locationRowをmodel.Locationに変換(WKT解析込み)
func (lr *locationRow) ToLocation() (*model.Location, error) {
	geom, err := ParseWKT(lr.Name, lr.GeomWKT)
	if err != nil {
		return nil, err
	}
	return &model.Location{
		GID:      lr.GID,
		Name:     lr.Name,
		Type:     lr.Type,
		Summary:  lr.Summary,
		Geometry: geom,
	}, nil
}

// kingdomRow atlas.kingdomsのクエリ結果を受け取るための構造体
type kingdomRow struct {
	GID       int     `db:"gid"`
	Name      string  `db:"name"`
	ClaimedBy *string `db:"claimedby"`
	Summary   *string `db:"summary"`
	GeomWKT   string  `db:"geom_wkt"`
}

// ToKingdom kingdomRowをmodel.Kingdomに変換(WKT解析込み)
func (kr *kingdomRow) ToKingdom() (*model.Kingdom, error) {
	geom, err := ParseWKT(kr.Name, kr.GeomWKT)
	if err != nil {
		return nil, err
	}
	kingdom := &model.Kingdom{
		GID:      kr.GID,
		Name:     kr.Name,
		Summary:  kr.Summary,
		Geometry: geom,
	}
	if kr.ClaimedBy != nil {
		kingdom.ClaimedBy = *kr.ClaimedBy
	}
	return kingdom, nil
}
