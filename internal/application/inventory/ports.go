package inventory

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando el repositorio de activos atado a ella.
// Garantiza que lectura, validación y escritura de un movimiento sean atómicas por activo.
type TxRunner interface {
	Run(ctx context.Context, fn func(assets repository.AssetRepository) error) error
}
