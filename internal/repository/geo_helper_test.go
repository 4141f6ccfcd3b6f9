package repository

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Atlas-App/internal/domain/model"
)

func TestParseWKT(t *testing.T) {
	t.Run("ポイントを解析できる", func(t *testing.T) {
		geom, err := ParseWKT("Winterfell", "POINT(10.5 -20.25)")
		require.NoError(t, err)

		point, ok := geom.(orb.Point)
		require.True(t, ok)
		// WGS84の経度・緯度順
		assert.InDelta(t, 10.5, point.Lon(), 1e-9)
		assert.InDelta(t, -20.25, point.Lat(), 1e-9)
	})

	t.Run("ポリゴンを解析できる", func(t *testing.T) {
		geom, err := ParseWKT("The North", "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
		require.NoError(t, err)

		polygon, ok := geom.(orb.Polygon)
		require.True(t, ok)
		assert.Len(t, polygon[0], 5)
	})

	t.Run("不正なWKTはレコード名付きのGeometryParseErrorになる", func(t *testing.T) {
		_, err := ParseWKT("Winterfell", "POINT(not numbers)")
		require.Error(t, err)

		var parseErr *model.GeometryParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "Winterfell", parseErr.Name)
		assert.Equal(t, "POINT(not numbers)", parseErr.WKT)
	})
}

func TestRowConversions(t *testing.T) {
	t.Run("locationRowからLocationへの変換", func(t *testing.T) {
		summary := "The ruin of a once great castle."
		row := locationRow{GID: 7, Name: "Harrenhal", Type: "Ruin", Summary: &summary, GeomWKT: "POINT(1 2)"}

		location, err := row.ToLocation()
		require.NoError(t, err)
		assert.Equal(t, 7, location.GID)
		assert.Equal(t, "Harrenhal", location.Name)
		assert.Equal(t, "Ruin", location.Type)
		assert.Equal(t, summary, location.GetSummary())
	})

	t.Run("claimedbyがNULLの王国は空文字列になる", func(t *testing.T) {
		row := kingdomRow{GID: 1, Name: "The Crownlands", GeomWKT: "POLYGON((0 0, 1 0, 1 1, 0 1, 0 0))"}

		kingdom, err := row.ToKingdom()
		require.NoError(t, err)
		assert.Equal(t, "", kingdom.ClaimedBy)
		assert.Equal(t, model.NoSummaryPlaceholder, kingdom.GetSummary())
	})

	t.Run("WKTの解析失敗は変換全体を失敗させる", func(t *testing.T) {
		row := kingdomRow{GID: 1, Name: "Broken", GeomWKT: "POLYGON(("}

		_, err := row.ToKingdom()
		var parseErr *model.GeometryParseError
		assert.True(t, errors.As(err, &parseErr))
	})
}
