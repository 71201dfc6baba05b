package repository

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// AssetRepository define el puerto de persistencia del inventario de equipos.
// UpdateStock hace que el repositorio cumpla inventory.StockUpdater.
type AssetRepository interface {
	Create(ctx context.Context, asset *entity.Asset) error
	GetByID(ctx context.Context, id string) (*entity.Asset, error)
	GetByCode(ctx context.Context, code string) (*entity.Asset, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Asset, error)
	// GetForUpdate bloquea la fila del activo hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Asset, error)
	UpdateStock(assetID string, newQuantity int) error
}
