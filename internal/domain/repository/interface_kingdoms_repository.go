package repository

import (
	"context"

	"Atlas-App/internal/domain/model"
)

type KingdomsRepository interface {
	// GetAll 全王国を取得(ジオメトリ解析済み、クエリ結果順)
	GetAll(ctx context.Context) ([]model.Kingdom, error)
	// GetAreas 王国ごとの面積(km²)を取得
	GetAreas(ctx context.Context) ([]model.KingdomArea, error)
}
