package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
)

type fakeMailer struct {
	sent []entity.MailMessage
	err  error
}

func (m *fakeMailer) Provider() string { return "fake" }

func (m *fakeMailer) Send(_ context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, msg)
	return &entity.DeliveryReceipt{
		Provider:  "fake",
		MessageID: "<1@canal.hn>",
		Recipient: msg.To,
		SentAt:    time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC),
	}, nil
}

func TestMailUseCase_Send(t *testing.T) {
	mailer := &fakeMailer{}
	uc := notification.NewMailUseCase(mailer, 0, logger.Nop())

	out, err := uc.Send(context.Background(), dto.SendMailRequest{
		To:          "Gerencia <gerencia@canal.hn>",
		Subject:     " Reporte semanal ",
		Description: "Adjunto el resumen",
	})
	require.NoError(t, err)
	assert.True(t, out.Delivered)
	assert.Equal(t, "fake", out.Provider)
	assert.Equal(t, "<1@canal.hn>", out.MessageID)
	assert.Equal(t, "2026-10-19T15:00:00Z", out.SentAt)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "gerencia@canal.hn", mailer.sent[0].To)
	assert.Equal(t, "Reporte semanal", mailer.sent[0].Subject)
}

func TestMailUseCase_Validacion(t *testing.T) {
	mailer := &fakeMailer{}
	uc := notification.NewMailUseCase(mailer, 0, logger.Nop())

	tests := []struct {
		name string
		in   dto.SendMailRequest
	}{
		{"sin destinatario", dto.SendMailRequest{Subject: "s", Description: "d"}},
		{"destinatario inválido", dto.SendMailRequest{To: "gerencia", Subject: "s", Description: "d"}},
		{"sin asunto", dto.SendMailRequest{To: "a@canal.hn", Description: "d"}},
		{"sin cuerpo", dto.SendMailRequest{To: "a@canal.hn", Subject: "s", HTML: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Send(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			require.NotNil(t, out)
			assert.False(t, out.Delivered)
		})
	}
	assert.Empty(t, mailer.sent)
}

func TestMailUseCase_FalloDelProveedor(t *testing.T) {
	uc := notification.NewMailUseCase(&fakeMailer{err: errors.New("dial tcp: connection refused")}, 0, logger.Nop())

	out, err := uc.Send(context.Background(), dto.SendMailRequest{To: "a@canal.hn", Subject: "s", HTML: "<p>x</p>"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.False(t, out.Delivered)
	assert.Equal(t, "a@canal.hn", out.Recipient)
	assert.Contains(t, out.Error, "connection refused")
}

func TestMailUseCase_LimiteDeTasa(t *testing.T) {
	mailer := &fakeMailer{}
	uc := notification.NewMailUseCase(mailer, 1, logger.Nop())
	msg := entity.MailMessage{To: "a@canal.hn", Subject: "s", Description: "d"}

	_, err := uc.Deliver(context.Background(), msg)
	require.NoError(t, err)

	// el segundo envío tendría que esperar un minuto; el contexto vence antes
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = uc.Deliver(ctx, msg)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Len(t, mailer.sent, 1)
}
