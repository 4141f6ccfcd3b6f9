package repository

import (
	"context"

	"Atlas-App/internal/domain/model"
)

type LocationsRepository interface {
	// GetAll 全地名を取得(ジオメトリ解析済み)
	GetAll(ctx context.Context) ([]model.Location, error)
	// GetSettlements 拠点(typeがCastle/City)のみを取得
	GetSettlements(ctx context.Context) ([]model.Settlement, error)
}
