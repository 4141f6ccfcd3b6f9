package service

import (
	"math/rand"

	"Atlas-App/internal/domain/model"
)

const (
	// populationSeed 合成人口の固定シード(同じ件数・並び順なら毎回同じ値になる)
	populationSeed = 42
	populationMin  = 100
	populationMax  = 5000

	radiusMin     = 5.0
	radiusMax     = 15.0
	radiusDefault = 10.0
)

// AssignPopulations 各拠点に[100, 5000]の一様乱数で人口を合成する
// 実データに人口カラムは存在しないため常に合成する。固定シードなので
// 上流データが変わらない限り再描画しても同じ値になる(再現性の契約)
func AssignPopulations(settlements []model.Settlement) {
	rng := rand.New(rand.NewSource(populationSeed))
	for i := range settlements {
		settlements[i].Population = populationMin + rng.Intn(populationMax-populationMin+1)
	}
}

// AssignRadii 人口を[min, max]から[5, 15]ピクセルに線形補間して表示半径を導出する
// 全拠点の人口が等しい場合は中間値の10に固定。空集合は何もしない
func AssignRadii(settlements []model.Settlement) {
	if len(settlements) == 0 {
		return
	}

	minPop := settlements[0].Population
	maxPop := settlements[0].Population
	for _, s := range settlements {
		if s.Population < minPop {
			minPop = s.Population
		}
		if s.Population > maxPop {
			maxPop = s.Population
		}
	}

	for i := range settlements {
		if maxPop > minPop {
			ratio := float64(settlements[i].Population-minPop) / float64(maxPop-minPop)
			settlements[i].Radius = radiusMin + ratio*(radiusMax-radiusMin)
		} else {
			settlements[i].Radius = radiusDefault
		}
	}
}
