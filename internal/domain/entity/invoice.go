package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem representa una línea de factura (concepto facturado y su precio).
// Inmutable una vez agregada a la factura.
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
}

// Invoice representa una factura con sus líneas en orden de captura.
// Subtotal, TaxAmount y Total se recalculan en cada mutación (ver domain/billing).
type Invoice struct {
	ID           string
	CustomerName string
	Items        []LineItem
	Subtotal     decimal.Decimal
	TaxAmount    decimal.Decimal // ISV
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
