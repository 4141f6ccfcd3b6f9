package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"Atlas-App/internal/domain/model"
	"Atlas-App/internal/domain/repository"
	"Atlas-App/internal/infrastructure/database"
)

// regionToKingdomCase got.housesのregionを現代の王国名に寄せるCASE式
// (The Neck / Beyond the Wall は The North に吸収される)
const regionToKingdomCase = `
	CASE
		WHEN h.region IN ('The North', 'The Neck', 'Beyond the Wall') THEN 'The North'
		WHEN h.region = 'The Vale' THEN 'The Vale'
		WHEN h.region = 'Iron Islands' THEN 'Iron Islands'
		WHEN h.region = 'The Riverlands' THEN 'The Riverlands'
		WHEN h.region = 'The Westerlands' THEN 'The Westerlands'
		WHEN h.region = 'The Stormlands' THEN 'The Stormlands'
		WHEN h.region = 'The Crownlands' THEN 'The Crownlands'
		WHEN h.region = 'The Reach' THEN 'The Reach'
		WHEN h.region = 'Dorne' THEN 'Dorne'
		ELSE 'Other Regions'
	END`

// regionToSevenKingdomsCase 征服戦争以前の七王国区分に寄せるCASE式
const regionToSevenKingdomsCase = `
	CASE
		WHEN h.region IN ('The North', 'The Neck', 'Beyond the Wall') THEN 'Kingdom of the North'
		WHEN h.region IN ('The Vale') THEN 'Kingdom of the Mountain and the Vale'
		WHEN h.region IN ('Iron Islands', 'The Riverlands') THEN 'Kingdom of the Isles and the Riverlands'
		WHEN h.region IN ('The Westerlands') THEN 'Kingdom of the Rock'
		WHEN h.region IN ('The Stormlands', 'The Crownlands') THEN 'Kingdom of the Stormlands'
		WHEN h.region IN ('The Reach') THEN 'Kingdom of the Reach'
		WHEN h.region IN ('Dorne') THEN 'Principality of Dorne'
		ELSE 'Other Regions'
	END`

type PostgresHousesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresHousesRepository(client *database.PostgreSQLClient) repository.HousesRepository {
	return &PostgresHousesRepository{
		client: client,
	}
}

func (r *PostgresHousesRepository) GetHousesWithKingdoms(ctx context.Context) ([]model.HouseKingdom, error) {
	query := fmt.Sprintf(`
		SELECT
			h.name AS house_name,
			%s AS kingdom_name
		FROM got.houses h
	`, regionToKingdomCase)

	var houses []model.HouseKingdom
	if err := r.client.DB.SelectContext(ctx, &houses, query); err != nil {
		return nil, fmt.Errorf("家データの取得失敗: %w", err)
	}

	// 表示用に家名の先頭の "House " を取り除く
	for i := range houses {
		houses[i].HouseName = strings.TrimPrefix(houses[i].HouseName, "House ")
	}

	return houses, nil
}

func (r *PostgresHousesRepository) GetHouseCounts(ctx context.Context) ([]model.KingdomHouseCount, error) {
	houses, err := r.GetHousesWithKingdoms(ctx)
	if err != nil {
		return nil, err
	}

	countMap := make(map[string]int)
	for _, house := range houses {
		countMap[house.KingdomName]++
	}

	names := make([]string, 0, len(countMap))
	for name := range countMap {
		names = append(names, name)
	}
	sort.Strings(names)

	counts := make([]model.KingdomHouseCount, 0, len(names))
	for _, name := range names {
		counts = append(counts, model.KingdomHouseCount{
			KingdomName:    name,
			NumberOfHouses: countMap[name],
		})
	}

	return counts, nil
}

func (r *PostgresHousesRepository) GetPopulationByKingdom(ctx context.Context) ([]model.KingdomPopulation, error) {
	// 人口 = 王国内の家に所属するキャラクター数
	query := fmt.Sprintf(`
		SELECT
			%s AS kingdom,
			COUNT(c.id) AS total_population
		FROM got.characters c
		JOIN got.houses h ON h.id = ANY(c.allegiances)
		GROUP BY kingdom
	`, regionToKingdomCase)

	var populations []model.KingdomPopulation
	if err := r.client.DB.SelectContext(ctx, &populations, query); err != nil {
		return nil, fmt.Errorf("王国人口の取得失敗: %w", err)
	}

	return populations, nil
}

func (r *PostgresHousesRepository) GetPopulationBySevenKingdoms(ctx context.Context) ([]model.KingdomPopulation, error) {
	query := fmt.Sprintf(`
		SELECT
			%s AS kingdom,
			COUNT(c.id) AS total_population
		FROM got.characters c
		JOIN got.houses h ON h.id = ANY(c.allegiances)
		GROUP BY kingdom
	`, regionToSevenKingdomsCase)

	var populations []model.KingdomPopulation
	if err := r.client.DB.SelectContext(ctx, &populations, query); err != nil {
		return nil, fmt.Errorf("七王国人口の取得失敗: %w", err)
	}

	return populations, nil
}
