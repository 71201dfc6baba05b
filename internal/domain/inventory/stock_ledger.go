package inventory

import (
	"fmt"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// AssetIndex instantánea de activos por ID sobre la que se valida un movimiento.
type AssetIndex map[string]entity.Asset

// IndexOf construye un AssetIndex a partir de una lista de activos.
func IndexOf(assets ...entity.Asset) AssetIndex {
	idx := make(AssetIndex, len(assets))
	for _, a := range assets {
		idx[a.ID] = a
	}
	return idx
}

// StockUpdater persiste la nueva cantidad de un activo. Lo implementa el almacén de inventario;
// el libro de stock nunca es dueño de la persistencia.
type StockUpdater interface {
	UpdateStock(assetID string, newQuantity int) error
}

// StockUpdaterFunc adapta una función a StockUpdater.
type StockUpdaterFunc func(assetID string, newQuantity int) error

// UpdateStock implementa StockUpdater.
func (f StockUpdaterFunc) UpdateStock(assetID string, newQuantity int) error {
	return f(assetID, newQuantity)
}

// ApplyMovement valida y aplica un movimiento (ENTRADA/SALIDA) sobre la instantánea index.
//
// Orden de validación: cantidad positiva y tipo conocido, existencia del activo, stock suficiente
// (solo SALIDA), tope de existencias (solo ENTRADA). Si algo falla no se llama a store y el activo queda igual. Una SALIDA puede
// dejar la cantidad exactamente en 0.
func ApplyMovement(index AssetIndex, mov entity.StockMovement, store StockUpdater) (entity.Asset, error) {
	if mov.Quantity <= 0 {
		return entity.Asset{}, domain.NewValidationError("quantity", "la cantidad debe ser un entero positivo")
	}
	if !mov.Kind.Valid() {
		return entity.Asset{}, domain.NewValidationError("kind", "tipo de movimiento inválido")
	}
	asset, ok := index[mov.AssetID]
	if !ok {
		return entity.Asset{}, &domain.NotFoundError{Resource: "activo", ID: mov.AssetID}
	}

	newQty := asset.Quantity
	switch mov.Kind {
	case entity.MovementEntrada:
		if mov.Quantity > entity.MaxAssetQuantity-asset.Quantity {
			return entity.Asset{}, domain.NewValidationError("quantity",
				fmt.Sprintf("la entrada excede el máximo de %d unidades por activo", entity.MaxAssetQuantity))
		}
		newQty += mov.Quantity
	case entity.MovementSalida:
		if mov.Quantity > asset.Quantity {
			return entity.Asset{}, &domain.InsufficientStockError{
				AssetID:   asset.ID,
				Available: asset.Quantity,
				Requested: mov.Quantity,
			}
		}
		newQty -= mov.Quantity
	}

	if err := store.UpdateStock(asset.ID, newQty); err != nil {
		return entity.Asset{}, err
	}
	asset.Quantity = newQty
	return asset, nil
}
