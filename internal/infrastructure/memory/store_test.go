package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/memory"
)

func TestInvoiceRepo_CopiasAisladas(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewInvoiceRepository(store)
	ctx := context.Background()

	inv := billing.NewInvoice("Cliente")
	inv.ID = "inv-1"
	require.NoError(t, repo.Create(ctx, &inv))

	next, err := billing.AddItem(inv, "Cámara", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, repo.AppendItem(ctx, &next, 0))

	got, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	got.Items[0].Name = "modificado"

	again, err := repo.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "Cámara", again.Items[0].Name)
}

func TestInvoiceRepo_AppendItemPosicionOcupada(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewInvoiceRepository(store)
	ctx := context.Background()

	inv := billing.NewInvoice("Cliente")
	inv.ID = "inv-1"
	require.NoError(t, repo.Create(ctx, &inv))
	first, err := billing.AddItem(inv, "Cámara", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, repo.AppendItem(ctx, &first, 0))

	// otra alta calculada sobre la instantánea vieja
	stale, err := billing.AddItem(inv, "Micrófono", decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.AppendItem(ctx, &stale, 0), domain.ErrDuplicate)

	ghost := entity.Invoice{ID: "nope", Items: []entity.LineItem{{Name: "x"}}}
	assert.ErrorIs(t, repo.AppendItem(ctx, &ghost, 0), domain.ErrNotFound)
}

func TestAssetRepo_PaginacionYUpdateStock(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAssetRepository(store)
	ctx := context.Background()

	for _, code := range []string{"C", "A", "B"} {
		require.NoError(t, repo.Create(ctx, &entity.Asset{ID: "id-" + code, Code: code, Name: code}))
	}
	assert.ErrorIs(t, repo.Create(ctx, &entity.Asset{ID: "otro", Code: "A"}), domain.ErrDuplicate)

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Code)
	assert.Equal(t, "C", page[1].Code)

	empty, err := repo.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.UpdateStock("id-A", 7))
	a, err := repo.GetByID(ctx, "id-A")
	require.NoError(t, err)
	assert.Equal(t, 7, a.Quantity)
	assert.ErrorIs(t, repo.UpdateStock("nope", 1), domain.ErrNotFound)
}

func TestExchangeRepo_RechazaInvalidos(t *testing.T) {
	repo := memory.NewExchangeRepository(memory.NewStore())
	ctx := context.Background()

	assert.ErrorIs(t, repo.Append(ctx, &entity.Exchange{Company: "", Description: "x"}), domain.ErrInvalidInput)
	require.NoError(t, repo.Append(ctx, &entity.Exchange{ID: "1", Company: "Roma", Description: "x"}))
	require.NoError(t, repo.Append(ctx, &entity.Exchange{ID: "2", Company: "Central", Description: "y"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	runner := memory.NewTxRunner(memory.NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := runner.Run(ctx, func(repository.AssetRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
