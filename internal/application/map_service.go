package application

import (
	"context"
	"fmt"

	"Atlas-App/internal/domain/repository"
	"Atlas-App/internal/domain/service"
)

// MapService ウェステロス地図の生成に関するビジネスロジックを提供するサービス
type MapService interface {
	// BuildWesterosMap 選択された王国で絞り込んだ地図のHTML断片を生成する
	// フィルタが空の場合は全王国を表示する
	BuildWesterosMap(ctx context.Context, selectedKingdoms []string) (string, error)
}

// mapServiceImpl MapServiceの実装
type mapServiceImpl struct {
	kingdomsRepo  repository.KingdomsRepository
	locationsRepo repository.LocationsRepository
	builder       *service.MapBuilder
}

// NewMapService MapServiceの新しいインスタンスを作成
func NewMapService(kingdomsRepo repository.KingdomsRepository, locationsRepo repository.LocationsRepository) MapService {
	return &mapServiceImpl{
		kingdomsRepo:  kingdomsRepo,
		locationsRepo: locationsRepo,
		builder:       service.NewMapBuilder(),
	}
}

// BuildWesterosMap 取得→付加情報の導出→地図合成を1リクエスト分実行する
// 地図は毎回ゼロから再構築され、キャッシュは持たない
func (s *mapServiceImpl) BuildWesterosMap(ctx context.Context, selectedKingdoms []string) (string, error) {
	kingdoms, err := s.kingdomsRepo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("王国データの取得失敗: %w", err)
	}

	locations, err := s.locationsRepo.GetAll(ctx)
	if err != nil {
		return "", fmt.Errorf("地名データの取得失敗: %w", err)
	}

	settlements, err := s.locationsRepo.GetSettlements(ctx)
	if err != nil {
		return "", fmt.Errorf("拠点データの取得失敗: %w", err)
	}

	// 人口の合成と表示半径の導出
	service.AssignPopulations(settlements)
	service.AssignRadii(settlements)

	html, err := s.builder.BuildMap(kingdoms, locations, settlements, selectedKingdoms)
	if err != nil {
		// ジオメトリ起因の失敗は種別を保ったまま呼び出し側に伝える
		return "", err
	}

	return html, nil
}
