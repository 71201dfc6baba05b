package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.ExchangeRepository = (*ExchangeRepo)(nil)

// ExchangeRepo registro de canjes sobre PostgreSQL. El orden de inserción lo da la columna seq.
type ExchangeRepo struct {
	q Querier
}

// NewExchangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExchangeRepository(q Querier) *ExchangeRepo {
	return &ExchangeRepo{q: q}
}

// Append inserta el canje al final del registro.
func (r *ExchangeRepo) Append(ctx context.Context, ex *entity.Exchange) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO exchanges (id, company, description, apply_tax, active, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ex.ID, ex.Company, ex.Description, ex.ApplyTax, ex.Active, ex.StartDate, ex.EndDate, ex.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// List devuelve los canjes en orden de inserción.
func (r *ExchangeRepo) List(ctx context.Context) ([]*entity.Exchange, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company, description, apply_tax, active, start_date, end_date, created_at
		FROM exchanges ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list exchanges: %w", err)
	}
	defer rows.Close()
	list := []*entity.Exchange{}
	for rows.Next() {
		var ex entity.Exchange
		if err := rows.Scan(&ex.ID, &ex.Company, &ex.Description, &ex.ApplyTax, &ex.Active,
			&ex.StartDate, &ex.EndDate, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange: %w", err)
		}
		list = append(list, &ex)
	}
	return list, rows.Err()
}
