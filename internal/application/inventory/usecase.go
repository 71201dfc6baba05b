package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	domaininv "github.com/jhoicas/canal-admin-api/internal/domain/inventory"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
)

// MovementUseCase aplica movimientos de stock (ENTRADA/SALIDA) de forma transaccional.
// El activo se bloquea (SELECT FOR UPDATE o lock del almacén en memoria) durante
// lectura-validación-escritura, de modo que movimientos concurrentes sobre el mismo activo
// se serializan y no se pierden actualizaciones.
type MovementUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, log: log}
}

// ApplyMovement bloquea el activo, delega la validación al libro de stock del dominio y
// persiste la nueva cantidad a través del repositorio (StockUpdater).
//
// Errores: domain.ErrInvalidInput (cantidad/tipo), domain.ErrNotFound (activo),
// domain.ErrInsufficientStock (salida mayor al disponible).
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, assetID string, in dto.MovementRequest) (*dto.AssetResponse, error) {
	mov := entity.StockMovement{
		AssetID:  assetID,
		Quantity: in.Quantity,
		Kind:     entity.MovementKind(strings.ToUpper(strings.TrimSpace(in.Kind))),
	}

	var updated entity.Asset
	err := uc.txRunner.Run(ctx, func(assets repository.AssetRepository) error {
		index := domaininv.AssetIndex{}
		current, err := assets.GetForUpdate(ctx, assetID)
		if err != nil {
			return err
		}
		if current != nil {
			index[current.ID] = *current
		}
		updated, err = domaininv.ApplyMovement(index, mov, assets)
		return err
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("asset_id", assetID).
			Str("kind", string(mov.Kind)).
			Int("quantity", mov.Quantity).
			Msg("movimiento de inventario rechazado")
		return nil, err
	}
	updated.UpdatedAt = time.Now()

	uc.log.Info().
		Str("asset_id", updated.ID).
		Str("kind", string(mov.Kind)).
		Int("quantity", mov.Quantity).
		Int("new_quantity", updated.Quantity).
		Msg("movimiento de inventario aplicado")
	return ToAssetResponse(&updated), nil
}
