// Package exchange casos de uso del registro de canjes.
package exchange

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	domainexchange "github.com/jhoicas/canal-admin-api/internal/domain/exchange"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ExchangeUseCase registra y lista canjes. Edición y baja quedan fuera de este registro.
type ExchangeUseCase struct {
	repo repository.ExchangeRepository
}

// NewExchangeUseCase construye el caso de uso.
func NewExchangeUseCase(repo repository.ExchangeRepository) *ExchangeUseCase {
	return &ExchangeUseCase{repo: repo}
}

// Add valida el canje y lo agrega al final del registro.
func (uc *ExchangeUseCase) Add(ctx context.Context, in dto.CreateExchangeRequest) (*dto.ExchangeResponse, error) {
	start, err := parseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	ex := entity.Exchange{
		ID:          uuid.New().String(),
		Company:     strings.TrimSpace(in.Company),
		Description: strings.TrimSpace(in.Description),
		ApplyTax:    in.ApplyTax,
		Active:      in.Active,
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   time.Now(),
	}
	if err := domainexchange.Validate(ex); err != nil {
		return nil, err
	}
	if err := uc.repo.Append(ctx, &ex); err != nil {
		return nil, err
	}
	return toExchangeResponse(&ex), nil
}

// List devuelve todos los canjes en orden de registro.
func (uc *ExchangeUseCase) List(ctx context.Context) ([]*dto.ExchangeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExchangeResponse, 0, len(list))
	for _, ex := range list {
		out = append(out, toExchangeResponse(ex))
	}
	return out, nil
}

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, domain.NewValidationError(field, "formato de fecha esperado YYYY-MM-DD")
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toExchangeResponse(ex *entity.Exchange) *dto.ExchangeResponse {
	return &dto.ExchangeResponse{
		ID:          ex.ID,
		Company:     ex.Company,
		Description: ex.Description,
		ApplyTax:    ex.ApplyTax,
		Active:      ex.Active,
		StartDate:   formatDate(ex.StartDate),
		EndDate:     formatDate(ex.EndDate),
		CreatedAt:   ex.CreatedAt.Format(time.RFC3339),
	}
}
