package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// AssetUseCase alta y consulta de activos del inventario.
type AssetUseCase struct {
	repo repository.AssetRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo}
}

// Create registra un activo. El código es único; la cantidad inicial no puede ser negativa.
func (uc *AssetUseCase) Create(ctx context.Context, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" {
		return nil, domain.NewValidationError("code", "el código es requerido")
	}
	if name == "" {
		return nil, domain.NewValidationError("name", "el nombre es requerido")
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "la cantidad inicial no puede ser negativa")
	}
	if in.Quantity > entity.MaxAssetQuantity {
		return nil, domain.NewValidationError("quantity", fmt.Sprintf("la cantidad inicial excede el máximo de %d", entity.MaxAssetQuantity))
	}
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	asset := &entity.Asset{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return ToAssetResponse(asset), nil
}

// GetByID obtiene un activo.
func (uc *AssetUseCase) GetByID(ctx context.Context, id string) (*dto.AssetResponse, error) {
	asset, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, &domain.NotFoundError{Resource: "activo", ID: id}
	}
	return ToAssetResponse(asset), nil
}

// List lista activos con paginación.
func (uc *AssetUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.AssetResponse, error) {
	page.Normalize()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToAssetResponse(a))
	}
	return out, nil
}

// ToAssetResponse convierte la entidad al DTO de salida.
func ToAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Quantity:  a.Quantity,
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
