package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body para POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices (factura en borrador, sin líneas).
type CreateInvoiceRequest struct {
	CustomerName string `json:"customer_name"`
}

// AddInvoiceItemRequest body para POST /api/invoices/:id/items.
type AddInvoiceItemRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SendInvoiceRequest body para POST /api/invoices/:id/send.
type SendInvoiceRequest struct {
	To string `json:"to"`
}

// InvoiceResponse factura con sus líneas. Montos redondeados a 2 decimales.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	CustomerName string                `json:"customer_name"`
	Items        []InvoiceItemResponse `json:"items"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	TaxAmount    decimal.Decimal       `json:"tax_amount"`
	Total        decimal.Decimal       `json:"total"`
	CreatedAt    string                `json:"created_at"`
}

// InvoiceItemResponse línea de factura en la respuesta.
type InvoiceItemResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
