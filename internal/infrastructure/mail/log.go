package mail

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
)

var _ notification.Mailer = (*LogMailer)(nil)

// LogMailer proveedor de desarrollo: registra el correo y lo da por entregado.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el proveedor log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Provider() string { return ProviderLog }

func (m *LogMailer) Send(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := uuid.New().String()
	m.log.Info().
		Str("message_id", id).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("correo (proveedor log, no enviado)")
	return &entity.DeliveryReceipt{
		Provider:  ProviderLog,
		MessageID: id,
		Recipient: msg.To,
		SentAt:    time.Now().UTC(),
	}, nil
}
