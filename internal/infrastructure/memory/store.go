// Package memory implementa los puertos de persistencia en memoria (desarrollo y pruebas).
//
// Un único mutex protege el almacén. Los TxRunner lo toman durante todo el callback, así que
// lectura-validación-escritura de un movimiento o de una línea de factura es atómica.
// No hay rollback: los casos de uso validan antes de escribir y la escritura es el último paso.
package memory

import (
	"sync"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	domainexchange "github.com/jhoicas/canal-admin-api/internal/domain/exchange"
)

// Store almacén en memoria compartido por los repositorios.
type Store struct {
	mu sync.Mutex

	assets       map[string]entity.Asset
	invoices     map[string]entity.Invoice
	invoiceOrder []string
	exchanges    domainexchange.Registry
	customers    map[string]entity.Customer
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		assets:    make(map[string]entity.Asset),
		invoices:  make(map[string]entity.Invoice),
		customers: make(map[string]entity.Customer),
	}
}

// guard bloquea el almacén salvo que el repositorio ya corra dentro de una transacción.
type guard struct {
	s    *Store
	inTx bool
}

func (g guard) lock() func() {
	if g.inTx {
		return func() {}
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}

func copyInvoice(inv entity.Invoice) entity.Invoice {
	items := make([]entity.LineItem, len(inv.Items))
	copy(items, inv.Items)
	inv.Items = items
	return inv
}
