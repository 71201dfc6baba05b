package memory

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/application/billing"
	"github.com/jhoicas/canal-admin-api/internal/application/inventory"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and billing.BillingTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner serializa los callbacks tomando el lock del almacén.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con el repositorio de activos atado al lock.
func (r *TxRunner) Run(ctx context.Context, fn func(assets repository.AssetRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&AssetRepo{guard{s: r.s, inTx: true}})
}

// RunBilling ejecuta fn con el repositorio de facturas atado al lock.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(&InvoiceRepo{guard{s: r.s, inTx: true}})
}
