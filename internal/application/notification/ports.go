package notification

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// Mailer proveedor de correo (SMTP, Mailgun o log). Devuelve el comprobante de entrega o
// el error del proveedor; nunca lo descarta.
type Mailer interface {
	Send(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error)
	Provider() string
}
