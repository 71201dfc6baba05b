package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SummaryResult resultado crudo del resumen del tablero.
type SummaryResult struct {
	InvoiceCount       int
	BilledSubtotal     decimal.Decimal
	BilledTax          decimal.Decimal
	BilledTotal        decimal.Decimal
	AssetCount         int
	OutOfStockAssets   int // activos con cantidad 0
	ExchangeCount      int
	ActiveExchanges    int
	TaxExemptExchanges int // activos y sin ISV
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	Summary(ctx context.Context) (*SummaryResult, error)
}
