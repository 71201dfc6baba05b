// Package mail proveedores de correo saliente: SMTP (gomail), Mailgun y log para desarrollo.
package mail

import (
	"errors"
	"fmt"

	"github.com/jhoicas/canal-admin-api/internal/application/notification"
	"github.com/jhoicas/canal-admin-api/pkg/config"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
	"github.com/mailgun/mailgun-go/v4"
)

// Nombres de proveedor tal como aparecen en MAIL_PROVIDER y en los comprobantes.
const (
	ProviderSMTP    = "smtp"
	ProviderMailgun = "mailgun"
	ProviderLog     = "log"
)

// ErrMailConfig configuración de correo inválida para el proveedor pedido.
var ErrMailConfig = errors.New("configuración de correo inválida")

// NewMailer elige el proveedor según la configuración. Solo MAIL_PROVIDER vacío o "log" usa el
// proveedor log; un proveedor real con configuración incompleta es un error de arranque, nunca
// se degrada a log en silencio.
func NewMailer(cfg config.MailConfig, log *logger.Logger) (notification.Mailer, error) {
	switch cfg.Provider {
	case ProviderSMTP:
		if cfg.Host == "" || cfg.User == "" || cfg.Password == "" || cfg.From == "" {
			return nil, fmt.Errorf("%w: smtp requiere MAIL_HOST, MAIL_USER, MAIL_PASSWORD y MAIL_FROM", ErrMailConfig)
		}
		log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("proveedor de correo SMTP")
		return NewSMTPMailer(cfg), nil
	case ProviderMailgun:
		if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.From == "" {
			return nil, fmt.Errorf("%w: mailgun requiere MAILGUN_DOMAIN, MAILGUN_API_KEY y MAIL_FROM", ErrMailConfig)
		}
		log.Info().Str("domain", cfg.MailgunDomain).Msg("proveedor de correo Mailgun")
		return NewMailgunMailer(mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey), cfg.From, cfg.FromName), nil
	case ProviderLog, "":
		log.Warn().Msg("proveedor de correo log: los correos no se envían")
		return NewLogMailer(log), nil
	default:
		return nil, fmt.Errorf("%w: proveedor desconocido %q", ErrMailConfig, cfg.Provider)
	}
}
