package memory

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo resumen del tablero calculado sobre el almacén en memoria.
type ReportRepo struct {
	guard
}

// NewReportRepository construye el repositorio sobre el almacén.
func NewReportRepository(s *Store) *ReportRepo {
	return &ReportRepo{guard{s: s}}
}

// Summary agrega facturas, activos y canjes.
func (r *ReportRepo) Summary(_ context.Context) (*repository.SummaryResult, error) {
	defer r.lock()()
	res := &repository.SummaryResult{
		BilledSubtotal: decimal.Zero,
		BilledTax:      decimal.Zero,
		BilledTotal:    decimal.Zero,
	}
	for _, inv := range r.s.invoices {
		res.InvoiceCount++
		res.BilledSubtotal = res.BilledSubtotal.Add(inv.Subtotal)
		res.BilledTax = res.BilledTax.Add(inv.TaxAmount)
		res.BilledTotal = res.BilledTotal.Add(inv.Total)
	}
	for _, a := range r.s.assets {
		res.AssetCount++
		if a.Quantity == 0 {
			res.OutOfStockAssets++
		}
	}
	for _, ex := range r.s.exchanges {
		res.ExchangeCount++
		if ex.Active {
			res.ActiveExchanges++
			if !ex.ApplyTax {
				res.TaxExemptExchanges++
			}
		}
	}
	return res, nil
}
