package application

import (
	"context"
	"fmt"
	"sort"

	"Atlas-App/internal/domain/model"
	"Atlas-App/internal/domain/repository"
)

// chartHeight すべてのグラフで共通の表示高さ(ピクセル)
const chartHeight = 400

// DashboardService ダッシュボードの集計・グラフに関するビジネスロジックを提供するサービス
type DashboardService interface {
	// GetOverview 家の総数と総人口を取得
	GetOverview(ctx context.Context) (*model.DashboardOverview, error)

	// GetKingdomList フィルタUI用の王国名一覧を取得(昇順)
	GetKingdomList(ctx context.Context) ([]string, error)

	// GetHouseCountChart 王国ごとの家の数のグラフ仕様を取得
	GetHouseCountChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error)

	// GetPopulationChart 王国ごとの人口のグラフ仕様を取得
	GetPopulationChart(ctx context.Context, selectedKingdoms []string, plotType, grouping string) (*model.ChartSpec, error)

	// GetAreaChart 王国ごとの面積(km²)のグラフ仕様を取得
	GetAreaChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error)
}

// dashboardServiceImpl DashboardServiceの実装
type dashboardServiceImpl struct {
	housesRepo   repository.HousesRepository
	kingdomsRepo repository.KingdomsRepository
}

// NewDashboardService DashboardServiceの新しいインスタンスを作成
func NewDashboardService(housesRepo repository.HousesRepository, kingdomsRepo repository.KingdomsRepository) DashboardService {
	return &dashboardServiceImpl{
		housesRepo:   housesRepo,
		kingdomsRepo: kingdomsRepo,
	}
}

// GetOverview 家の総数(重複を除いた家名の数)と総人口を取得
func (s *dashboardServiceImpl) GetOverview(ctx context.Context) (*model.DashboardOverview, error) {
	houses, err := s.housesRepo.GetHousesWithKingdoms(ctx)
	if err != nil {
		return nil, fmt.Errorf("家データの取得失敗: %w", err)
	}

	uniqueHouses := make(map[string]struct{}, len(houses))
	for _, house := range houses {
		uniqueHouses[house.HouseName] = struct{}{}
	}

	populations, err := s.housesRepo.GetPopulationByKingdom(ctx)
	if err != nil {
		return nil, fmt.Errorf("王国人口の取得失敗: %w", err)
	}

	totalPopulation := 0
	for _, p := range populations {
		totalPopulation += p.TotalPopulation
	}

	return &model.DashboardOverview{
		TotalHouses:     len(uniqueHouses),
		TotalPopulation: totalPopulation,
	}, nil
}

// GetKingdomList 人口集計と家集計に現れる王国名の和集合を昇順で返す
func (s *dashboardServiceImpl) GetKingdomList(ctx context.Context) ([]string, error) {
	populations, err := s.housesRepo.GetPopulationByKingdom(ctx)
	if err != nil {
		return nil, fmt.Errorf("王国人口の取得失敗: %w", err)
	}

	houses, err := s.housesRepo.GetHousesWithKingdoms(ctx)
	if err != nil {
		return nil, fmt.Errorf("家データの取得失敗: %w", err)
	}

	nameSet := make(map[string]struct{})
	for _, p := range populations {
		nameSet[p.Kingdom] = struct{}{}
	}
	for _, h := range houses {
		nameSet[h.KingdomName] = struct{}{}
	}

	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// GetHouseCountChart 王国ごとの家の数のグラフ仕様を取得
func (s *dashboardServiceImpl) GetHouseCountChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error) {
	counts, err := s.housesRepo.GetHouseCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("家集計の取得失敗: %w", err)
	}

	entries := make([]chartEntry, 0, len(counts))
	for _, c := range counts {
		entries = append(entries, chartEntry{Label: c.KingdomName, Value: float64(c.NumberOfHouses)})
	}

	return buildChartSpec("Number of Houses per Kingdom", "Kingdom Name", "Number of Houses",
		plotType, entries, selectedKingdoms), nil
}

// GetPopulationChart 王国ごとの人口のグラフ仕様を取得
// groupingがhistoricalの場合は征服戦争以前の七王国区分で集計する
func (s *dashboardServiceImpl) GetPopulationChart(ctx context.Context, selectedKingdoms []string, plotType, grouping string) (*model.ChartSpec, error) {
	var populations []model.KingdomPopulation
	var err error

	if grouping == model.GroupingHistorical {
		populations, err = s.housesRepo.GetPopulationBySevenKingdoms(ctx)
	} else {
		populations, err = s.housesRepo.GetPopulationByKingdom(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("王国人口の取得失敗: %w", err)
	}

	entries := make([]chartEntry, 0, len(populations))
	for _, p := range populations {
		entries = append(entries, chartEntry{Label: p.Kingdom, Value: float64(p.TotalPopulation)})
	}

	return buildChartSpec("Total Population by Kingdom", "Kingdom", "Total Population",
		plotType, entries, selectedKingdoms), nil
}

// GetAreaChart 王国ごとの面積(km²)のグラフ仕様を取得
func (s *dashboardServiceImpl) GetAreaChart(ctx context.Context, selectedKingdoms []string, plotType string) (*model.ChartSpec, error) {
	areas, err := s.kingdomsRepo.GetAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("王国面積の取得失敗: %w", err)
	}

	entries := make([]chartEntry, 0, len(areas))
	for _, a := range areas {
		entries = append(entries, chartEntry{Label: a.Kingdom, Value: a.AreaKm2})
	}

	return buildChartSpec("Area of Kingdoms (km²)", "Kingdom", "Area (km²)",
		plotType, entries, selectedKingdoms), nil
}

// chartEntry グラフ1本分のラベルと値
type chartEntry struct {
	Label string
	Value float64
}

// buildChartSpec 絞り込み・色付けを適用してグラフ仕様を組み立てる
// 空のフィルタは全件表示を意味する。色は王国ごとの固定カラー表から引く
func buildChartSpec(title, xLabel, yLabel, plotType string, entries []chartEntry, selectedKingdoms []string) *model.ChartSpec {
	if len(selectedKingdoms) > 0 {
		selected := make(map[string]struct{}, len(selectedKingdoms))
		for _, name := range selectedKingdoms {
			selected[name] = struct{}{}
		}
		filtered := make([]chartEntry, 0, len(entries))
		for _, entry := range entries {
			if _, ok := selected[entry.Label]; ok {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	if plotType != model.PlotTypePie {
		plotType = model.PlotTypeBar
	}

	spec := &model.ChartSpec{
		Type:   plotType,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Labels: make([]string, 0, len(entries)),
		Values: make([]float64, 0, len(entries)),
		Colors: make([]string, 0, len(entries)),
		Height: chartHeight,
	}

	for _, entry := range entries {
		spec.Labels = append(spec.Labels, entry.Label)
		spec.Values = append(spec.Values, entry.Value)
		spec.Colors = append(spec.Colors, model.GetKingdomColor(entry.Label))
	}

	return spec
}
