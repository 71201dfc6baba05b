package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainbilling "github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/pdf"
)

func TestGenerateInvoicePDF(t *testing.T) {
	inv := domainbilling.NewInvoice("Ferretería El Martillo")
	inv.ID = "3f1c2a9e-7b1d-4c55-9a43-0d2b8e6f1a10"
	inv.CreatedAt = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	var err error
	inv, err = domainbilling.AddItem(inv, "Cámara", decimal.NewFromInt(100))
	require.NoError(t, err)
	inv, err = domainbilling.AddItem(inv, "Micrófono", decimal.NewFromInt(50))
	require.NoError(t, err)

	out, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), &inv, "Canal 8")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inv := domainbilling.NewInvoice("Cliente")

	_, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(ctx, &inv, "Canal 8")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatMoney(t *testing.T) {
	got := pdf.FormatMoney(decimal.RequireFromString("172.5"))
	assert.Contains(t, got, "L ")
	assert.Contains(t, got, "172")
	assert.Contains(t, got, "50")
}
