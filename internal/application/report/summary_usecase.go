// Package report casos de uso de reportes del tablero.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	domainbilling "github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// SummaryUseCase arma el resumen del tablero (facturación, inventario, canjes).
// Fuente de datos: ReportRepository (consultas read-only).
type SummaryUseCase struct {
	repo repository.ReportRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(repo repository.ReportRepository) *SummaryUseCase {
	return &SummaryUseCase{repo: repo}
}

// GetSummary devuelve los KPIs actuales con montos redondeados para presentación.
func (uc *SummaryUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	res, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	return &dto.DashboardSummaryDTO{
		InvoiceCount:       res.InvoiceCount,
		BilledSubtotal:     domainbilling.Round(res.BilledSubtotal),
		BilledTax:          domainbilling.Round(res.BilledTax),
		BilledTotal:        domainbilling.Round(res.BilledTotal),
		AssetCount:         res.AssetCount,
		OutOfStockAssets:   res.OutOfStockAssets,
		ExchangeCount:      res.ExchangeCount,
		ActiveExchanges:    res.ActiveExchanges,
		TaxExemptExchanges: res.TaxExemptExchanges,
		GeneratedAt:        time.Now().Format(time.RFC3339),
	}, nil
}
