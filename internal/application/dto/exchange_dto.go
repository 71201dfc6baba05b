package dto

// CreateExchangeRequest body para POST /api/exchanges.
// Fechas en formato YYYY-MM-DD, ambas opcionales.
type CreateExchangeRequest struct {
	Company     string  `json:"company"`
	Description string  `json:"description"`
	ApplyTax    bool    `json:"apply_tax"`
	Active      bool    `json:"active"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// ExchangeResponse canje en respuestas.
type ExchangeResponse struct {
	ID          string  `json:"id"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	ApplyTax    bool    `json:"apply_tax"`
	Active      bool    `json:"active"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
