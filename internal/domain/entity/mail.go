package entity

import "time"

// MailMessage correo transaccional a enviar.
// Description es el cuerpo en texto plano; HTML es la versión enriquecida.
type MailMessage struct {
	To          string
	Subject     string
	Description string
	HTML        string
	Attachments []MailAttachment
}

// MailAttachment adjunto en memoria (por ejemplo el PDF de una factura).
type MailAttachment struct {
	Filename string
	Content  []byte
}

// DeliveryReceipt comprobante de entrega devuelto por el proveedor de correo.
type DeliveryReceipt struct {
	Provider  string
	MessageID string
	Recipient string
	SentAt    time.Time
}
