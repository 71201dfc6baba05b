package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/pkg/config"
)

// execRecorder Querier que solo registra Exec (suficiente para Migrate).
type execRecorder struct {
	scripts []string
	err     error
}

func (r *execRecorder) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	r.scripts = append(r.scripts, sql)
	return pgconn.CommandTag{}, r.err
}

func (r *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (r *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func TestMigrate_AplicaScriptsEmbebidos(t *testing.T) {
	rec := &execRecorder{}
	require.NoError(t, Migrate(context.Background(), rec))
	require.NotEmpty(t, rec.scripts)
	assert.Contains(t, rec.scripts[0], "CREATE TABLE IF NOT EXISTS assets")
	assert.Contains(t, rec.scripts[0], "invoice_items")
}

// Los montos se guardan con precisión completa; el redondeo es solo de presentación.
func TestMigrate_MontosSinEscalaFija(t *testing.T) {
	rec := &execRecorder{}
	require.NoError(t, Migrate(context.Background(), rec))
	script := rec.scripts[0]
	assert.NotRegexp(t, `NUMERIC\s*\(`, script)
	for _, col := range []string{"subtotal", "tax_amount", "total", "unit_price"} {
		assert.Regexp(t, col+`\s+NUMERIC NOT NULL`, script)
	}
}

func TestMigrate_PropagaError(t *testing.T) {
	rec := &execRecorder{err: errors.New("permiso denegado")}
	err := Migrate(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.sql")
}

func TestRedactedDSN(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: 5432, User: "canal", Password: "secreto", DBName: "canal", SSLMode: "disable"}
	got := RedactedDSN(cfg)
	assert.NotContains(t, got, "secreto")
	assert.Contains(t, got, "canal:xxxxx@db:5432")

	cfg = config.DBConfig{DatabaseURL: "postgresql://u@h/db"}
	assert.Equal(t, "postgresql://u@h/db", RedactedDSN(cfg))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isInvalidText(&pgconn.PgError{Code: "22P02"}))
	assert.False(t, isInvalidText(errors.New("otro")))
}
