package repository

import (
	"context"

	"Atlas-App/internal/domain/model"
)

type HousesRepository interface {
	// GetHousesWithKingdoms 家名と対応する王国名の一覧を取得
	GetHousesWithKingdoms(ctx context.Context) ([]model.HouseKingdom, error)
	// GetHouseCounts 王国ごとの家の数を取得(王国名の昇順)
	GetHouseCounts(ctx context.Context) ([]model.KingdomHouseCount, error)
	// GetPopulationByKingdom 王国ごとの人口(所属キャラクター数)を取得
	GetPopulationByKingdom(ctx context.Context) ([]model.KingdomPopulation, error)
	// GetPopulationBySevenKingdoms 征服戦争以前の七王国区分での人口を取得
	GetPopulationBySevenKingdoms(ctx context.Context) ([]model.KingdomPopulation, error)
}
