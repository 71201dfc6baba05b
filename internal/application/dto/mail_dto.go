package dto

// SendMailRequest body para POST /api/mail.
type SendMailRequest struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	HTML        string `json:"html"`
}

// DeliveryResponse resultado observable de un envío de correo.
type DeliveryResponse struct {
	Delivered bool   `json:"delivered"`
	Provider  string `json:"provider,omitempty"`
	MessageID string `json:"message_id,omitempty"`
	Recipient string `json:"recipient"`
	SentAt    string `json:"sent_at,omitempty"`
	Error     string `json:"error,omitempty"`
}
