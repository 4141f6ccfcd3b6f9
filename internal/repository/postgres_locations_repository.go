package repository

import (
	"context"
	"fmt"

	"Atlas-App/internal/domain/model"
	"Atlas-App/internal/domain/repository"
	"Atlas-App/internal/infrastructure/database"
)

type PostgresLocationsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresLocationsRepository(client *database.PostgreSQLClient) repository.LocationsRepository {
	return &PostgresLocationsRepository{
		client: client,
	}
}

func (r *PostgresLocationsRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	query := `SELECT gid, name, type, summary, ST_AsText(geog) AS geom_wkt FROM atlas.locations`

	var rows []locationRow
	if err := r.client.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("地名データの取得失敗: %w", err)
	}

	locations := make([]model.Location, 0, len(rows))
	for _, row := range rows {
		location, err := row.ToLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, *location)
	}

	return locations, nil
}

func (r *PostgresLocationsRepository) GetSettlements(ctx context.Context) ([]model.Settlement, error) {
	query := `
		SELECT gid, name, type, summary, ST_AsText(geog) AS geom_wkt
		FROM atlas.locations
		WHERE type IN ('Castle', 'City')
	`

	var rows []locationRow
	if err := r.client.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("拠点データの取得失敗: %w", err)
	}

	settlements := make([]model.Settlement, 0, len(rows))
	for _, row := range rows {
		location, err := row.ToLocation()
		if err != nil {
			return nil, err
		}
		// 人口と半径は後段のサービス層で導出される
		settlements = append(settlements, model.Settlement{Location: *location})
	}

	return settlements, nil
}
