package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/canal-admin-api/internal/application/dto"
	"github.com/jhoicas/canal-admin-api/internal/domain"
	domainbilling "github.com/jhoicas/canal-admin-api/internal/domain/billing"
	"github.com/jhoicas/canal-admin-api/internal/domain/entity"
	"github.com/jhoicas/canal-admin-api/internal/domain/repository"
)

// InvoiceUseCase crea facturas y les agrega líneas. El cálculo vive en domain/billing;
// aquí solo se serializa el acceso por factura y se persiste.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(txRunner BillingTxRunner, invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo}
}

// CreateInvoice crea una factura vacía (totales en cero) para el cliente indicado.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv := domainbilling.NewInvoice(in.CustomerName)
	if inv.CustomerName == "" {
		return nil, domain.NewValidationError("customer_name", "el cliente es requerido")
	}
	now := time.Now()
	inv.ID = uuid.New().String()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if err := uc.invoiceRepo.Create(ctx, &inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(&inv), nil
}

// AddItem agrega una línea a la factura. La cabecera se bloquea durante la operación para que
// dos altas simultáneas no calculen totales sobre la misma instantánea.
// Si la validación falla la factura persistida no cambia.
func (uc *InvoiceUseCase) AddItem(ctx context.Context, invoiceID string, in dto.AddInvoiceItemRequest) (*dto.InvoiceResponse, error) {
	var out entity.Invoice
	err := uc.txRunner.RunBilling(ctx, func(invoices repository.InvoiceRepository) error {
		current, err := invoices.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if current == nil {
			return &domain.NotFoundError{Resource: "factura", ID: invoiceID}
		}
		next, err := domainbilling.AddItem(*current, in.Name, in.UnitPrice)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now()
		if err := invoices.AppendItem(ctx, &next, len(next.Items)-1); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(&out), nil
}

// GetInvoice obtiene una factura con sus líneas.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// List lista facturas (más recientes primero), con sus líneas.
func (uc *InvoiceUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.Normalize()
	list, err := uc.invoiceRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInvoiceResponse(inv))
	}
	return out, nil
}

func (uc *InvoiceUseCase) load(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &domain.NotFoundError{Resource: "factura", ID: id}
	}
	return inv, nil
}

// ToInvoiceResponse convierte la factura al DTO; aquí se aplica el redondeo de presentación.
func ToInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		CustomerName: inv.CustomerName,
		Items:        make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		Subtotal:     domainbilling.Round(inv.Subtotal),
		TaxAmount:    domainbilling.Round(inv.TaxAmount),
		Total:        domainbilling.Round(inv.Total),
		CreatedAt:    inv.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			Name:      it.Name,
			UnitPrice: domainbilling.Round(it.UnitPrice),
		})
	}
	return resp
}
