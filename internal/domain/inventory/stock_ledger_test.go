package inventory_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/inventory"
)

// recorder guarda las llamadas a UpdateStock y mantiene la instantánea al día.
type recorder struct {
	index inventory.AssetIndex
	calls int
}

func (r *recorder) UpdateStock(assetID string, qty int) error {
	r.calls++
	a := r.index[assetID]
	a.Quantity = qty
	r.index[assetID] = a
	return nil
}

func newRecorder(assets ...entity.Asset) *recorder {
	return &recorder{index: inventory.IndexOf(assets...)}
}

func camara(qty int) entity.Asset {
	return entity.Asset{ID: "a1", Code: "CAM-01", Name: "Cámara Sony", Quantity: qty}
}

// TestApplyMovement_SalidaLuegoSalidaInsuficiente: qty 10, SALIDA 5 → 5; SALIDA 6 falla y queda 5.
func TestApplyMovement_SalidaLuegoSalidaInsuficiente(t *testing.T) {
	rec := newRecorder(camara(10))

	got, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 5, Kind: entity.MovementSalida}, rec)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)

	_, err = inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 6, Kind: entity.MovementSalida}, rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var sErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, 5, sErr.Available)
	assert.Equal(t, 6, sErr.Requested)

	assert.Equal(t, 5, rec.index["a1"].Quantity)
	assert.Equal(t, 1, rec.calls, "la salida rechazada no debe persistir nada")
}

func TestApplyMovement_EntradaSuma(t *testing.T) {
	for _, tc := range []struct{ q, d int }{{0, 1}, {3, 7}, {100, 1000}} {
		rec := newRecorder(camara(tc.q))
		got, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: tc.d, Kind: entity.MovementEntrada}, rec)
		require.NoError(t, err)
		assert.Equal(t, tc.q+tc.d, got.Quantity)
		assert.Equal(t, tc.q+tc.d, rec.index["a1"].Quantity)
	}
}

// TestApplyMovement_EntradaExcedeMaximo: una entrada que desborda el tope no cambia el activo.
func TestApplyMovement_EntradaExcedeMaximo(t *testing.T) {
	rec := newRecorder(camara(entity.MaxAssetQuantity - 2))

	_, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 3, Kind: entity.MovementEntrada}, rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "quantity", vErr.Field)
	assert.Zero(t, rec.calls)
	assert.Equal(t, entity.MaxAssetQuantity-2, rec.index["a1"].Quantity)

	_, err = inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: math.MaxInt, Kind: entity.MovementEntrada}, rec)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, rec.calls)

	got, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 2, Kind: entity.MovementEntrada}, rec)
	require.NoError(t, err)
	assert.Equal(t, entity.MaxAssetQuantity, got.Quantity)
}

func TestApplyMovement_SalidaHastaCero(t *testing.T) {
	rec := newRecorder(camara(4))
	got, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 4, Kind: entity.MovementSalida}, rec)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestApplyMovement_CantidadNoPositiva(t *testing.T) {
	for _, q := range []int{0, -3} {
		rec := newRecorder(camara(10))
		_, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: q, Kind: entity.MovementEntrada}, rec)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, rec.calls)
	}
}

func TestApplyMovement_TipoDesconocido(t *testing.T) {
	rec := newRecorder(camara(10))
	_, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "a1", Quantity: 1, Kind: "AJUSTE"}, rec)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplyMovement_ActivoInexistente(t *testing.T) {
	rec := newRecorder(camara(10))
	_, err := inventory.ApplyMovement(rec.index, entity.StockMovement{AssetID: "zz", Quantity: 1, Kind: entity.MovementEntrada}, rec)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, rec.calls)
}

// TestApplyMovement_ErrorDelAlmacen: si UpdateStock falla se propaga el error.
func TestApplyMovement_ErrorDelAlmacen(t *testing.T) {
	boom := errors.New("db caída")
	store := inventory.StockUpdaterFunc(func(string, int) error { return boom })
	_, err := inventory.ApplyMovement(inventory.IndexOf(camara(2)), entity.StockMovement{AssetID: "a1", Quantity: 1, Kind: entity.MovementEntrada}, store)
	assert.ErrorIs(t, err, boom)
}
