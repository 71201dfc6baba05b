// Package notification envío de correos transaccionales (facturas, avisos del tablero).
package notification

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
	"golang.org/x/time/rate"
)

// MailUseCase valida, limita la tasa de envío y entrega correos a través del Mailer configurado.
type MailUseCase struct {
	mailer  Mailer
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewMailUseCase construye el caso de uso. perMinute <= 0 desactiva el límite de tasa.
func NewMailUseCase(mailer Mailer, perMinute int, log *logger.Logger) *MailUseCase {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return &MailUseCase{mailer: mailer, limiter: limiter, log: log}
}

// Send envía el correo del request y devuelve un resultado observable.
// Si la entrega falla, DeliveryResponse.Delivered es false y el error se devuelve también.
func (uc *MailUseCase) Send(ctx context.Context, in dto.SendMailRequest) (*dto.DeliveryResponse, error) {
	receipt, err := uc.Deliver(ctx, entity.MailMessage{
		To:          in.To,
		Subject:     in.Subject,
		Description: in.Description,
		HTML:        in.HTML,
	})
	if err != nil {
		return &dto.DeliveryResponse{Delivered: false, Recipient: in.To, Provider: uc.mailer.Provider(), Error: err.Error()}, err
	}
	return ToDeliveryResponse(receipt), nil
}

// Deliver valida el mensaje y lo entrega. Los fallos del proveedor se registran y se devuelven
// envueltos en domain.ErrDeliveryFailed.
func (uc *MailUseCase) Deliver(ctx context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	if err := validateMessage(&msg); err != nil {
		return nil, err
	}
	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: límite de envío: %v", domain.ErrDeliveryFailed, err)
	}

	receipt, err := uc.mailer.Send(ctx, msg)
	if err != nil {
		uc.log.Error().Err(err).
			Str("provider", uc.mailer.Provider()).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("fallo al enviar correo")
		if errors.Is(err, domain.ErrDeliveryFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	uc.log.Info().
		Str("provider", receipt.Provider).
		Str("to", receipt.Recipient).
		Str("message_id", receipt.MessageID).
		Msg("correo enviado")
	return receipt, nil
}

func validateMessage(msg *entity.MailMessage) error {
	msg.To = strings.TrimSpace(msg.To)
	msg.Subject = strings.TrimSpace(msg.Subject)
	if msg.To == "" {
		return domain.NewValidationError("to", "el destinatario es requerido")
	}
	addr, err := mail.ParseAddress(msg.To)
	if err != nil {
		return domain.NewValidationError("to", "dirección de correo inválida")
	}
	msg.To = addr.Address
	if msg.Subject == "" {
		return domain.NewValidationError("subject", "el asunto es requerido")
	}
	if strings.TrimSpace(msg.Description) == "" && strings.TrimSpace(msg.HTML) == "" {
		return domain.NewValidationError("html", "se requiere cuerpo de texto o html")
	}
	return nil
}

// ToDeliveryResponse convierte el comprobante al DTO.
func ToDeliveryResponse(r *entity.DeliveryReceipt) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		Delivered: true,
		Provider:  r.Provider,
		MessageID: r.MessageID,
		Recipient: r.Recipient,
		SentAt:    r.SentAt.Format(time.RFC3339),
	}
}
