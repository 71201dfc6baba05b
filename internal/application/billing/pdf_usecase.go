package billing

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/jhoicas/canal-admin-api/internal/domain"
	domainbilling "github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura y lo envía por correo al cliente.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
	mailer      MailDeliverer
	issuer      string // nombre del canal en el encabezado
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	generator InvoicePDFGenerator,
	mailer MailDeliverer,
	issuer string,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		generator:   generator,
		mailer:      mailer,
		issuer:      issuer,
	}
}

// DownloadInvoicePDF genera el PDF de la factura.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrInvalidInput     si la factura no tiene líneas.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	return uc.render(ctx, inv)
}

// SendInvoice envía la factura al correo indicado con el PDF adjunto.
// El fallo de entrega se devuelve al llamador (domain.ErrDeliveryFailed).
func (uc *PDFUseCase) SendInvoice(ctx context.Context, invoiceID, to string) (*entity.DeliveryReceipt, error) {
	inv, err := uc.load(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	pdfBytes, filename, err := uc.render(ctx, inv)
	if err != nil {
		return nil, err
	}
	html, err := renderInvoiceHTML(uc.issuer, inv)
	if err != nil {
		return nil, err
	}
	msg := entity.MailMessage{
		To:          to,
		Subject:     fmt.Sprintf("Factura de %s para %s", uc.issuer, inv.CustomerName),
		Description: invoiceText(uc.issuer, inv),
		HTML:        html,
		Attachments: []entity.MailAttachment{{Filename: filename, Content: pdfBytes}},
	}
	return uc.mailer.Deliver(ctx, msg)
}

func (uc *PDFUseCase) load(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, &domain.NotFoundError{Resource: "factura", ID: invoiceID}
	}
	if len(inv.Items) == 0 {
		return nil, domain.NewValidationError("items", "la factura no tiene líneas")
	}
	return inv, nil
}

func (uc *PDFUseCase) render(ctx context.Context, inv *entity.Invoice) ([]byte, string, error) {
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, invoiceFilename(inv), nil
}

func invoiceFilename(inv *entity.Invoice) string {
	id := inv.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("factura_%s.pdf", id)
}

func invoiceText(issuer string, inv *entity.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nCliente: %s\n\n", issuer, inv.CustomerName)
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "%-40s L %s\n", it.Name, domainbilling.Round(it.UnitPrice).StringFixed(2))
	}
	fmt.Fprintf(&b, "\nSubtotal: L %s\nISV 15%%: L %s\nTotal: L %s\n",
		domainbilling.Round(inv.Subtotal).StringFixed(2),
		domainbilling.Round(inv.TaxAmount).StringFixed(2),
		domainbilling.Round(inv.Total).StringFixed(2),
	)
	return b.String()
}

var invoiceHTML = template.Must(template.New("invoice").Parse(`<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6;">
		<h2>{{.Issuer}}</h2>
		<p>Estimado(a) {{.Customer}}, adjuntamos su factura.</p>
		<table cellpadding="4" style="border-collapse: collapse;">
			{{range .Items}}<tr><td>{{.Name}}</td><td align="right">L {{.Price}}</td></tr>
			{{end}}<tr><td><b>Subtotal</b></td><td align="right">L {{.Subtotal}}</td></tr>
			<tr><td><b>ISV 15%</b></td><td align="right">L {{.Tax}}</td></tr>
			<tr><td><b>Total</b></td><td align="right"><b>L {{.Total}}</b></td></tr>
		</table>
	</body>
</html>`))

type invoiceHTMLLine struct {
	Name  string
	Price string
}

func renderInvoiceHTML(issuer string, inv *entity.Invoice) (string, error) {
	lines := make([]invoiceHTMLLine, 0, len(inv.Items))
	for _, it := range inv.Items {
		lines = append(lines, invoiceHTMLLine{Name: it.Name, Price: domainbilling.Round(it.UnitPrice).StringFixed(2)})
	}
	var buf bytes.Buffer
	err := invoiceHTML.Execute(&buf, map[string]interface{}{
		"Issuer":   issuer,
		"Customer": inv.CustomerName,
		"Items":    lines,
		"Subtotal": domainbilling.Round(inv.Subtotal).StringFixed(2),
		"Tax":      domainbilling.Round(inv.TaxAmount).StringFixed(2),
		"Total":    domainbilling.Round(inv.Total).StringFixed(2),
	})
	if err != nil {
		return "", fmt.Errorf("render html factura: %w", err)
	}
	return buf.String(), nil
}
