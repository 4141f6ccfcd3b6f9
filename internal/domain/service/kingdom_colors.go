package service

import (
	"fmt"
	"math"

	"Atlas-App/internal/domain/model"
)

// AssignKingdomColors 王国の並び順に基づいてレインボースケールから表示色を割り当てる
// color(i) = rainbow(i/N)。色相環全体に均等に分散するため、N個の王国は
// すべて異なる色になる。N=0の場合は何も割り当てない(後段はグレーに落とす)
// サンプリング位置はi/Nであり、最後の王国でもスケールの終端1.0には到達しない
// (i/(N-1)でスケール全幅を使い切る流儀とは異なる)
func AssignKingdomColors(kingdoms []model.Kingdom) {
	n := len(kingdoms)
	if n == 0 {
		return
	}
	for i := range kingdoms {
		kingdoms[i].Color = RainbowColor(float64(i) / float64(n))
	}
}

// RainbowColor レインボーカラーマップを0〜1の位置でサンプリングしてHEX色を返す
// 曲線はmatplotlibのrainbowと同じ: r=|2t-0.5|, g=sin(πt), b=cos(πt/2)
func RainbowColor(t float64) string {
	r := clamp01(math.Abs(2*t - 0.5))
	g := clamp01(math.Sin(t * math.Pi))
	b := clamp01(math.Cos(t * math.Pi / 2))
	return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
