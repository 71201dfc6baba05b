package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/reports/summary.
// KPIs del tablero: facturación, inventario y canjes.
type DashboardSummaryDTO struct {
	// Facturación (montos redondeados a 2 decimales)
	InvoiceCount   int             `json:"invoice_count"`
	BilledSubtotal decimal.Decimal `json:"billed_subtotal"`
	BilledTax      decimal.Decimal `json:"billed_tax"` // ISV
	BilledTotal    decimal.Decimal `json:"billed_total"`

	// Inventario
	AssetCount       int `json:"asset_count"`
	OutOfStockAssets int `json:"out_of_stock_assets"`

	// Canjes
	ExchangeCount      int `json:"exchange_count"`
	ActiveExchanges    int `json:"active_exchanges"`
	TaxExemptExchanges int `json:"tax_exempt_exchanges"` // activos sin ISV

	GeneratedAt string `json:"generated_at"`
}
