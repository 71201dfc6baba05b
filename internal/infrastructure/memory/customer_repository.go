package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	guard
}

// NewCustomerRepository construye el repositorio sobre el almacén.
func NewCustomerRepository(s *Store) *CustomerRepo {
	return &CustomerRepo{guard{s: s}}
}

// Create guarda el cliente; el RTN es único.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	defer r.lock()()
	for _, c := range r.s.customers {
		if c.TaxID == customer.TaxID {
			return domain.ErrDuplicate
		}
	}
	r.s.customers[customer.ID] = *customer
	return nil
}

// GetByID obtiene un cliente; nil si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	defer r.lock()()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByTaxID obtiene un cliente por RTN; nil si no existe.
func (r *CustomerRepo) GetByTaxID(_ context.Context, taxID string) (*entity.Customer, error) {
	defer r.lock()()
	for _, c := range r.s.customers {
		if c.TaxID == taxID {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

// List lista clientes ordenados por nombre.
func (r *CustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	defer r.lock()()
	all := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		c := c
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return paginate(all, limit, offset), nil
}
