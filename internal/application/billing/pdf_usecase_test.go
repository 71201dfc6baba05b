package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/canal-admin-api/internal/application/billing"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/infrastructure/memory"
)

type fakeGenerator struct {
	issuer string
	err    error
}

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, issuer string) ([]byte, error) {
	g.issuer = issuer
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

type fakeDeliverer struct {
	msgs []entity.MailMessage
	err  error
}

func (d *fakeDeliverer) Deliver(_ context.Context, msg entity.MailMessage) (*entity.DeliveryReceipt, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.msgs = append(d.msgs, msg)
	return &entity.DeliveryReceipt{Provider: "fake", MessageID: "m-1", Recipient: msg.To}, nil
}

type pdfFixture struct {
	invoices  *billing.InvoiceUseCase
	pdf       *billing.PDFUseCase
	generator *fakeGenerator
	mailer    *fakeDeliverer
}

func newPDFFixture() pdfFixture {
	store := memory.NewStore()
	repo := memory.NewInvoiceRepository(store)
	gen := &fakeGenerator{}
	mailer := &fakeDeliverer{}
	return pdfFixture{
		invoices:  billing.NewInvoiceUseCase(memory.NewTxRunner(store), repo),
		pdf:       billing.NewPDFUseCase(repo, gen, mailer, "Canal 8"),
		generator: gen,
		mailer:    mailer,
	}
}

func (f pdfFixture) invoiceWithItems(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	inv, err := f.invoices.CreateInvoice(ctx, dto.CreateInvoiceRequest{CustomerName: "Hotel <Central>"})
	require.NoError(t, err)
	_, err = f.invoices.AddItem(ctx, inv.ID, dto.AddInvoiceItemRequest{Name: "Cámara", UnitPrice: dec("100")})
	require.NoError(t, err)
	_, err = f.invoices.AddItem(ctx, inv.ID, dto.AddInvoiceItemRequest{Name: "Micrófono", UnitPrice: dec("50")})
	require.NoError(t, err)
	return inv.ID
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newPDFFixture()
	id := f.invoiceWithItems(t)

	out, filename, err := f.pdf.DownloadInvoicePDF(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 fake", string(out))
	assert.Equal(t, "factura_"+id[:8]+".pdf", filename)
	assert.Equal(t, "Canal 8", f.generator.issuer)
}

func TestDownloadInvoicePDF_Errores(t *testing.T) {
	f := newPDFFixture()
	ctx := context.Background()

	_, _, err := f.pdf.DownloadInvoicePDF(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty, err := f.invoices.CreateInvoice(ctx, dto.CreateInvoiceRequest{CustomerName: "Cliente"})
	require.NoError(t, err)
	_, _, err = f.pdf.DownloadInvoicePDF(ctx, empty.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	id := f.invoiceWithItems(t)
	f.generator.err = errors.New("fuente no disponible")
	_, _, err = f.pdf.DownloadInvoicePDF(ctx, id)
	assert.Error(t, err)
}

func TestSendInvoice(t *testing.T) {
	f := newPDFFixture()
	id := f.invoiceWithItems(t)

	receipt, err := f.pdf.SendInvoice(context.Background(), id, "compras@hotel.hn")
	require.NoError(t, err)
	assert.Equal(t, "compras@hotel.hn", receipt.Recipient)

	require.Len(t, f.mailer.msgs, 1)
	msg := f.mailer.msgs[0]
	assert.Equal(t, "compras@hotel.hn", msg.To)
	assert.Contains(t, msg.Subject, "Canal 8")
	assert.Contains(t, msg.Description, "Total: L 172.50")
	assert.Contains(t, msg.HTML, "Hotel &lt;Central&gt;")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "factura_"+id[:8]+".pdf", msg.Attachments[0].Filename)
}

func TestSendInvoice_FalloDeEntregaSeDevuelve(t *testing.T) {
	f := newPDFFixture()
	id := f.invoiceWithItems(t)
	f.mailer.err = errors.Join(domain.ErrDeliveryFailed, errors.New("smtp caído"))

	receipt, err := f.pdf.SendInvoice(context.Background(), id, "compras@hotel.hn")
	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}
