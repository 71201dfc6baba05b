// Package exchange valida y registra canjes (acuerdos de intercambio de pauta).
package exchange

import (
	"strings"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
)

// Registry lista de canjes en orden de inserción. Solo admite agregar al final.
type Registry []entity.Exchange

// Validate verifica empresa y descripción no vacías y, si ambas fechas están presentes,
// que el inicio no sea posterior al fin.
func Validate(candidate entity.Exchange) error {
	if strings.TrimSpace(candidate.Company) == "" {
		return domain.NewValidationError("company", "la empresa es requerida")
	}
	if strings.TrimSpace(candidate.Description) == "" {
		return domain.NewValidationError("description", "la descripción es requerida")
	}
	if candidate.StartDate != nil && candidate.EndDate != nil && candidate.StartDate.After(*candidate.EndDate) {
		return domain.NewValidationError("end_date", "la fecha de fin es anterior a la de inicio")
	}
	return nil
}

// AddExchange devuelve un nuevo registro con candidate al final. reg no se modifica.
func AddExchange(reg Registry, candidate entity.Exchange) (Registry, error) {
	if err := Validate(candidate); err != nil {
		return reg, err
	}
	out := make(Registry, len(reg), len(reg)+1)
	copy(out, reg)
	return append(out, candidate), nil
}
