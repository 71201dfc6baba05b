package mail

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/pkg/config"
	"gopkg.in/gomail.v2"
)

var _ notification.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía por SMTP con gomail. En el puerto 465 usa TLS implícito; en otro caso STARTTLS.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	host     string
}

// NewSMTPMailer construye el proveedor SMTP.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	return &SMTPMailer{dialer: d, from: cfg.From, fromName: cfg.FromName, host: cfg.Host}
}

func (m *SMTPMailer) Provider() string { return ProviderSMTP }

// Send arma el mensaje MIME y lo entrega. gomail no acepta contexto: si ctx vence antes de que
// el servidor responda, se devuelve ctx.Err() aunque el envío pueda completarse.
func (m *SMTPMailer) Send(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.host)
	gm := m.buildMessage(msg, messageID)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(gm) }()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("smtp send: %w", err)
		}
	}
	return &entity.DeliveryReceipt{
		Provider:  ProviderSMTP,
		MessageID: messageID,
		Recipient: msg.To,
		SentAt:    time.Now().UTC(),
	}, nil
}

func (m *SMTPMailer) buildMessage(msg entity.MailMessage, messageID string) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetHeader("Message-ID", messageID)

	switch {
	case msg.Description != "" && msg.HTML != "":
		gm.SetBody("text/plain", msg.Description)
		gm.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		gm.SetBody("text/html", msg.HTML)
	default:
		gm.SetBody("text/plain", msg.Description)
	}

	for _, att := range msg.Attachments {
		content := att.Content
		gm.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}
	return gm
}
