package repository

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
// Las líneas solo se agregan (AppendItem), nunca se editan ni eliminan.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve la factura con sus líneas en orden; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetForUpdate igual que GetByID pero bloquea la cabecera hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	// AppendItem guarda la línea en la posición indicada (0-based) y actualiza los totales de la cabecera.
	AppendItem(ctx context.Context, invoice *entity.Invoice, position int) error
}
