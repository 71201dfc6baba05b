package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
	"github.com/jhoicas/canal-admin-api/pkg/rtn"
)

// CustomerUseCase casos de uso para clientes (anunciantes).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. Nombre y RTN son obligatorios; el RTN es único.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	taxID := strings.TrimSpace(in.TaxID)
	if name == "" {
		return nil, domain.NewValidationError("name", "el nombre es requerido")
	}
	if taxID == "" {
		return nil, domain.NewValidationError("tax_id", "el RTN es requerido")
	}
	taxID, err := rtn.Normalize(taxID)
	if err != nil {
		return nil, domain.NewValidationError("tax_id", err.Error())
	}
	existing, err := uc.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		TaxID:     taxID,
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		TaxID: rtn.Format(c.TaxID),
		Email: c.Email,
		Phone: c.Phone,
	}
}
