package billing

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con el repositorio de facturas atado a ella.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer string) ([]byte, error)
}

// MailDeliverer entrega un correo y devuelve el comprobante o el error de entrega.
// Lo implementa notification.MailUseCase.
type MailDeliverer interface {
	Deliver(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error)
}
