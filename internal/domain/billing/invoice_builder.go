// Package billing contiene la lógica pura de facturación: acumulación de líneas y cálculo
// de subtotal, ISV y total.
//
// Los montos se manejan con precisión completa (shopspring/decimal); el redondeo a 2
// decimales se aplica solo al presentar (Round).
package billing

import (
	"math"
	"strings"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TaxRate ISV fijo del 15%.
var TaxRate = decimal.RequireFromString("0.15")

// Totals totales de una factura a precisión completa.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// NewInvoice crea una factura vacía para el cliente indicado.
func NewInvoice(customerName string) entity.Invoice {
	return entity.Invoice{
		CustomerName: strings.TrimSpace(customerName),
		Items:        []entity.LineItem{},
		Subtotal:     decimal.Zero,
		TaxAmount:    decimal.Zero,
		Total:        decimal.Zero,
	}
}

// ComputeTotals suma los precios unitarios y aplica el ISV.
// subtotal = Σ unitPrice; isv = subtotal * 0.15; total = subtotal + isv.
func ComputeTotals(items []entity.LineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice)
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal.Add(tax),
	}
}

// AddItem devuelve una nueva factura con la línea agregada al final y los totales recalculados.
// inv no se modifica: si la validación falla el llamador conserva la factura original intacta.
func AddItem(inv entity.Invoice, name string, unitPrice decimal.Decimal) (entity.Invoice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return inv, domain.NewValidationError("name", "el concepto es requerido")
	}
	if unitPrice.IsNegative() {
		return inv, domain.NewValidationError("unit_price", "el precio no puede ser negativo")
	}

	items := make([]entity.LineItem, len(inv.Items), len(inv.Items)+1)
	copy(items, inv.Items)
	items = append(items, entity.LineItem{Name: name, UnitPrice: unitPrice})

	out := inv
	out.Items = items
	t := ComputeTotals(items)
	out.Subtotal, out.TaxAmount, out.Total = t.Subtotal, t.TaxAmount, t.Total
	return out, nil
}

// PriceFromFloat convierte un precio recibido como float (formularios, JSON numérico)
// rechazando NaN, infinitos y negativos.
func PriceFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, domain.NewValidationError("unit_price", "el precio debe ser un número finito")
	}
	if f < 0 {
		return decimal.Zero, domain.NewValidationError("unit_price", "el precio no puede ser negativo")
	}
	return decimal.NewFromFloat(f), nil
}

// Round redondea un monto para presentación: 2 decimales, mitad hacia arriba
// (mitad lejos de cero; los montos de factura nunca son negativos).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
