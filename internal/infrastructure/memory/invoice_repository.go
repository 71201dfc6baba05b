package memory

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	guard
}

// NewInvoiceRepository construye el repositorio sobre el almacén.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{guard{s: s}}
}

// Create guarda la cabecera (y líneas, si trae).
func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	defer r.lock()()
	if _, ok := r.s.invoices[invoice.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.invoices[invoice.ID] = copyInvoice(*invoice)
	r.s.invoiceOrder = append(r.s.invoiceOrder, invoice.ID)
	return nil
}

// GetByID obtiene la factura; nil si no existe.
func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	defer r.lock()()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	out := copyInvoice(inv)
	return &out, nil
}

// GetForUpdate dentro de RunBilling el almacén ya está bloqueado; equivale a GetByID.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

// List devuelve las facturas más recientes primero.
func (r *InvoiceRepo) List(_ context.Context, limit, offset int) ([]*entity.Invoice, error) {
	defer r.lock()()
	all := make([]*entity.Invoice, 0, len(r.s.invoiceOrder))
	for i := len(r.s.invoiceOrder) - 1; i >= 0; i-- {
		inv := copyInvoice(r.s.invoices[r.s.invoiceOrder[i]])
		all = append(all, &inv)
	}
	return paginate(all, limit, offset), nil
}

// AppendItem reemplaza la factura por la versión con la línea agregada.
// position debe ser la siguiente posición libre.
func (r *InvoiceRepo) AppendItem(_ context.Context, invoice *entity.Invoice, position int) error {
	defer r.lock()()
	stored, ok := r.s.invoices[invoice.ID]
	if !ok {
		return &domain.NotFoundError{Resource: "factura", ID: invoice.ID}
	}
	if position != len(stored.Items) || position >= len(invoice.Items) {
		return domain.ErrDuplicate
	}
	r.s.invoices[invoice.ID] = copyInvoice(*invoice)
	return nil
}
