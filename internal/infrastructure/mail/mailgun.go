package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/mailgun/mailgun-go/v4"
)

var _ notification.Mailer = (*MailgunMailer)(nil)

// mailgunClient subconjunto de mailgun.Mailgun que usa el proveedor.
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunMailer envía a través de la API HTTP de Mailgun.
type MailgunMailer struct {
	mg       mailgunClient
	from     string
	fromName string
	timeout  time.Duration
}

// NewMailgunMailer construye el proveedor con un cliente ya configurado (mailgun.NewMailgun).
func NewMailgunMailer(mg mailgunClient, from, fromName string) *MailgunMailer {
	return &MailgunMailer{mg: mg, from: from, fromName: fromName, timeout: 20 * time.Second}
}

func (m *MailgunMailer) Provider() string { return ProviderMailgun }

// Send entrega el mensaje; el id devuelto por Mailgun queda en el comprobante.
func (m *MailgunMailer) Send(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	from := m.from
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}
	message := m.mg.NewMessage(from, msg.Subject, msg.Description, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}
	for _, att := range msg.Attachments {
		message.AddBufferAttachment(att.Filename, att.Content)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	resp, id, err := m.mg.Send(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("mailgun send: %w (respuesta: %s)", err, resp)
	}
	return &entity.DeliveryReceipt{
		Provider:  ProviderMailgun,
		MessageID: id,
		Recipient: msg.To,
		SentAt:    time.Now().UTC(),
	}, nil
}
