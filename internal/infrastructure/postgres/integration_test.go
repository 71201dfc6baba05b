package postgres_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/internal/application/billing"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/application/exchange"
	"github.com/jhoicas/canal-admin-api/internal/application/inventory"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	dombilling "github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/canal-admin-api/pkg/config"
	"github.com/jhoicas/canal-admin-api/pkg/logger"
)

// openTestDB abre un pool sobre un esquema propio y migrado. Requiere DATABASE_URL en formato URL.
func openTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido; se omiten las pruebas contra PostgreSQL")
	}
	ctx := context.Background()

	admin, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 2})
	require.NoError(t, err)
	schema := "canal_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn + sep + "search_path=" + schema, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPostgres_SalidasConcurrentesNoPierdenActualizaciones(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	assets := inventory.NewAssetUseCase(postgres.NewAssetRepository(pool))
	movements := inventory.NewMovementUseCase(postgres.NewTxRunner(pool), logger.Nop())

	a, err := assets.Create(ctx, dto.CreateAssetRequest{Code: "CAB-01", Name: "Cable SDI", Quantity: 30})
	require.NoError(t, err)

	var (
		wg               sync.WaitGroup
		mu               sync.Mutex
		ok, insufficient int
		unexpected       []error
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := movements.ApplyMovement(ctx, a.ID, dto.MovementRequest{Quantity: 1, Kind: "SALIDA"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient++
			default:
				unexpected = append(unexpected, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, unexpected)
	assert.Equal(t, 30, ok)
	assert.Equal(t, 20, insufficient)

	got, err := assets.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)
}

func TestPostgres_AssetRepo(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	assets := inventory.NewAssetUseCase(postgres.NewAssetRepository(pool))

	_, err := assets.Create(ctx, dto.CreateAssetRequest{Code: "MIC-01", Name: "Micrófono", Quantity: 2})
	require.NoError(t, err)
	_, err = assets.Create(ctx, dto.CreateAssetRequest{Code: "MIC-01", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = assets.GetByID(ctx, "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = assets.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	repo := postgres.NewAssetRepository(pool)
	assert.ErrorIs(t, repo.UpdateStock(uuid.NewString(), 1), domain.ErrNotFound)
}

func TestPostgres_FacturaConservaPrecisionYOrden(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	repo := postgres.NewInvoiceRepository(pool)
	uc := billing.NewInvoiceUseCase(postgres.NewTxRunner(pool), repo)

	inv, err := uc.CreateInvoice(ctx, dto.CreateInvoiceRequest{CustomerName: "Ferretería El Martillo"})
	require.NoError(t, err)

	prices := []string{"0.123456789", "100", "12345678901234567.5"}
	for i, p := range prices {
		_, err := uc.AddItem(ctx, inv.ID, dto.AddInvoiceItemRequest{Name: "línea " + string(rune('A'+i)), UnitPrice: dec(p)})
		require.NoError(t, err)
	}

	stored, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, len(prices))
	for i, p := range prices {
		assert.True(t, dec(p).Equal(stored.Items[i].UnitPrice), "línea %d: %s", i, stored.Items[i].UnitPrice)
	}
	want := dombilling.ComputeTotals(stored.Items)
	assert.True(t, want.Subtotal.Equal(stored.Subtotal), "subtotal %s", stored.Subtotal)
	assert.True(t, want.TaxAmount.Equal(stored.TaxAmount), "isv %s", stored.TaxAmount)
	assert.True(t, want.Total.Equal(stored.Total), "total %s", stored.Total)
}

func TestPostgres_AddItemConcurrente(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	repo := postgres.NewInvoiceRepository(pool)
	uc := billing.NewInvoiceUseCase(postgres.NewTxRunner(pool), repo)

	inv, err := uc.CreateInvoice(ctx, dto.CreateInvoiceRequest{CustomerName: "Canal 8"})
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(ctx, inv.ID, dto.AddInvoiceItemRequest{Name: "Spot 30s", UnitPrice: dec("10")})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, n)
	assert.True(t, dec("200").Equal(stored.Subtotal))
	assert.True(t, dec("230").Equal(stored.Total))

	list, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, n)
}

func TestPostgres_CanjesYResumen(t *testing.T) {
	pool := openTestDB(t)
	ctx := context.Background()
	uc := exchange.NewExchangeUseCase(postgres.NewExchangeRepository(pool))

	start, end := "2026-01-01", "2026-06-30"
	for _, in := range []dto.CreateExchangeRequest{
		{Company: "Pollo Campero", Description: "Pauta por cupones", Active: true},
		{Company: "Farmacia Kielsa", Description: "Menciones", ApplyTax: true, Active: true, StartDate: &start, EndDate: &end},
		{Company: "Hotel Real", Description: "Hospedaje de talentos"},
	} {
		_, err := uc.Add(ctx, in)
		require.NoError(t, err)
	}
	_, err := uc.Add(ctx, dto.CreateExchangeRequest{Company: "X", Description: "y", StartDate: &end, EndDate: &start})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Pollo Campero", list[0].Company)
	assert.Equal(t, "Hotel Real", list[2].Company)
	require.NotNil(t, list[1].StartDate)
	assert.Equal(t, start, *list[1].StartDate)

	sum, err := postgres.NewReportRepository(pool).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.ExchangeCount)
	assert.Equal(t, 2, sum.ActiveExchanges)
	assert.Equal(t, 1, sum.TaxExemptExchanges)
	assert.Zero(t, sum.InvoiceCount)
	assert.True(t, sum.BilledTotal.IsZero())
}
