package repository

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// ExchangeRepository registro de canjes de solo-agregar.
type ExchangeRepository interface {
	Append(ctx context.Context, ex *entity.Exchange) error
	// List devuelve los canjes en orden de inserción.
	List(ctx context.Context) ([]*entity.Exchange, error)
}
