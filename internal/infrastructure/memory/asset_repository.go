package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación en memoria de AssetRepository.
type AssetRepo struct {
	guard
}

// NewAssetRepository construye el repositorio sobre el almacén.
func NewAssetRepository(s *Store) *AssetRepo {
	return &AssetRepo{guard{s: s}}
}

// Create agrega un activo; el código es único.
func (r *AssetRepo) Create(_ context.Context, asset *entity.Asset) error {
	defer r.lock()()
	for _, a := range r.s.assets {
		if a.Code == asset.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.assets[asset.ID] = *asset
	return nil
}

// GetByID obtiene un activo; nil si no existe.
func (r *AssetRepo) GetByID(_ context.Context, id string) (*entity.Asset, error) {
	defer r.lock()()
	a, ok := r.s.assets[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// GetByCode obtiene un activo por código; nil si no existe.
func (r *AssetRepo) GetByCode(_ context.Context, code string) (*entity.Asset, error) {
	defer r.lock()()
	for _, a := range r.s.assets {
		if a.Code == code {
			a := a
			return &a, nil
		}
	}
	return nil, nil
}

// List lista activos ordenados por código.
func (r *AssetRepo) List(_ context.Context, limit, offset int) ([]*entity.Asset, error) {
	defer r.lock()()
	all := make([]*entity.Asset, 0, len(r.s.assets))
	for _, a := range r.s.assets {
		a := a
		all = append(all, &a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return paginate(all, limit, offset), nil
}

// GetForUpdate dentro de Run el almacén ya está bloqueado; equivale a GetByID.
func (r *AssetRepo) GetForUpdate(ctx context.Context, id string) (*entity.Asset, error) {
	return r.GetByID(ctx, id)
}

// UpdateStock fija la cantidad del activo.
func (r *AssetRepo) UpdateStock(assetID string, newQuantity int) error {
	defer r.lock()()
	a, ok := r.s.assets[assetID]
	if !ok {
		return &domain.NotFoundError{Resource: "activo", ID: assetID}
	}
	a.Quantity = newQuantity
	a.UpdatedAt = time.Now()
	r.s.assets[assetID] = a
	return nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
