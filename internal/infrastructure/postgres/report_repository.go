package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el tablero.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Summary agrega facturación, inventario y canjes en una sola consulta.
func (r *ReportRepo) Summary(ctx context.Context) (*repository.SummaryResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*)                       FROM invoices)                             AS invoice_count,
	    (SELECT COALESCE(SUM(subtotal), 0)     FROM invoices)                             AS billed_subtotal,
	    (SELECT COALESCE(SUM(tax_amount), 0)   FROM invoices)                             AS billed_tax,
	    (SELECT COALESCE(SUM(total), 0)        FROM invoices)                             AS billed_total,
	    (SELECT COUNT(*)                       FROM assets)                               AS asset_count,
	    (SELECT COUNT(*)                       FROM assets WHERE quantity = 0)            AS out_of_stock,
	    (SELECT COUNT(*)                       FROM exchanges)                            AS exchange_count,
	    (SELECT COUNT(*)                       FROM exchanges WHERE active)               AS active_exchanges,
	    (SELECT COUNT(*)                       FROM exchanges WHERE active AND NOT apply_tax) AS tax_exempt`
	var res repository.SummaryResult
	err := r.q.QueryRow(ctx, query).Scan(
		&res.InvoiceCount, &res.BilledSubtotal, &res.BilledTax, &res.BilledTotal,
		&res.AssetCount, &res.OutOfStockAssets,
		&res.ExchangeCount, &res.ActiveExchanges, &res.TaxExemptExchanges,
	)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return &res, nil
}
