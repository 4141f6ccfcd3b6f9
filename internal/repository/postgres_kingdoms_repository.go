package repository

import (
	"context"
	"fmt"

	"Atlas-App/internal/domain/model"
	"Atlas-App/internal/domain/repository"
	"Atlas-App/internal/infrastructure/database"
)

type PostgresKingdomsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresKingdomsRepository(client *database.PostgreSQLClient) repository.KingdomsRepository {
	return &PostgresKingdomsRepository{
		client: client,
	}
}

func (r *PostgresKingdomsRepository) GetAll(ctx context.Context) ([]model.Kingdom, error) {
	query := `SELECT gid, name, claimedby, summary, ST_AsText(geog) AS geom_wkt FROM atlas.kingdoms`

	var rows []kingdomRow
	if err := r.client.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("王国データの取得失敗: %w", err)
	}

	kingdoms := make([]model.Kingdom, 0, len(rows))
	for _, row := range rows {
		kingdom, err := row.ToKingdom()
		if err != nil {
			return nil, err
		}
		kingdoms = append(kingdoms, *kingdom)
	}

	return kingdoms, nil
}

func (r *PostgresKingdomsRepository) GetAreas(ctx context.Context) ([]model.KingdomArea, error) {
	// 球面ジオグラフィでの面積は平方メートルで返るため、km²に変換する
	query := `
		SELECT
			CASE
				WHEN k.name = 'The Neck' THEN 'The North'
				WHEN k.name = 'The Crownlands' THEN 'The Crownlands'
				ELSE k.name
			END AS kingdom,
			ST_Area(k.geog::geography) / 1000000 AS area_km2
		FROM atlas.kingdoms k
	`

	var areas []model.KingdomArea
	if err := r.client.DB.SelectContext(ctx, &areas, query); err != nil {
		return nil, fmt.Errorf("王国面積の取得失敗: %w", err)
	}

	return areas, nil
}
