package memory

import (
	"context"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	domainexchange "github.com/jhoicas/canal-admin-api/internal/domain/exchange"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.ExchangeRepository = (*ExchangeRepo)(nil)

// ExchangeRepo registro de canjes en memoria sobre domain/exchange.Registry.
type ExchangeRepo struct {
	guard
}

// NewExchangeRepository construye el repositorio sobre el almacén.
func NewExchangeRepository(s *Store) *ExchangeRepo {
	return &ExchangeRepo{guard{s: s}}
}

// Append agrega el canje al final del registro.
func (r *ExchangeRepo) Append(_ context.Context, ex *entity.Exchange) error {
	defer r.lock()()
	next, err := domainexchange.AddExchange(r.s.exchanges, *ex)
	if err != nil {
		return err
	}
	r.s.exchanges = next
	return nil
}

// List devuelve los canjes en orden de inserción.
func (r *ExchangeRepo) List(_ context.Context) ([]*entity.Exchange, error) {
	defer r.lock()()
	out := make([]*entity.Exchange, 0, len(r.s.exchanges))
	for _, ex := range r.s.exchanges {
		ex := ex
		out = append(out, &ex)
	}
	return out, nil
}
