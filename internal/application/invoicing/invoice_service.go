package invoicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invoicegen/backend/internal/domain/invoicing"
	"github.com/invoicegen/backend/internal/domain/shared"
	"github.com/invoicegen/backend/internal/infrastructure/pdf"
)

// InvoiceService handles invoice-related business operations, including
// lifecycle transitions and PDF export.
type InvoiceService struct {
	invoiceRepo invoicing.InvoiceRepository
	clientRepo  invoicing.ClientRepository
	renderer    pdf.InvoiceRenderer
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo invoicing.InvoiceRepository,
	clientRepo invoicing.ClientRepository,
	renderer pdf.InvoiceRenderer,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		renderer:    renderer,
	}
}

// Create creates a new draft invoice for the user
func (s *InvoiceService) Create(ctx context.Context, userID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, userID, req.ClientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.ErrCodeNotFound, "Client not found")
		}
		return nil, err
	}

	items, err := buildLineItems(req.LineItems)
	if err != nil {
		return nil, err
	}

	invoice, err := invoicing.NewInvoice(userID, req.ClientID, req.InvoiceNumber,
		req.InvoiceDate, req.DueDate, req.TaxRate, items)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	invoice.Client = client
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// List returns invoices owned by the user, optionally filtered by status
func (s *InvoiceService) List(ctx context.Context, userID uuid.UUID, statusFilter string) ([]InvoiceResponse, error) {
	var status *invoicing.InvoiceStatus
	if statusFilter != "" {
		candidate := invoicing.InvoiceStatus(statusFilter)
		if !candidate.IsValid() {
			return nil, shared.NewValidationError("Invalid invoice status: " + statusFilter)
		}
		status = &candidate
	}

	invoices, err := s.invoiceRepo.List(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// Get returns a single invoice with its client resolved
func (s *InvoiceService) Get(ctx context.Context, userID, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.loadWithClient(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Update applies a partial update to an invoice. A non-nil line item set
// replaces the stored items wholesale.
func (s *InvoiceService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.GetByID(ctx, userID, *req.ClientID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError(shared.ErrCodeNotFound, "Client not found")
			}
			return nil, err
		}
	}

	if err := invoice.UpdateDetails(invoicing.InvoiceUpdate{
		ClientID:      req.ClientID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		TaxRate:       req.TaxRate,
	}); err != nil {
		return nil, err
	}

	if req.LineItems != nil {
		items, err := buildLineItems(req.LineItems)
		if err != nil {
			return nil, err
		}
		if err := invoice.ReplaceLineItems(items); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := invoice.UpdateStatus(invoicing.InvoiceStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// Delete removes an invoice and its line items
func (s *InvoiceService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, userID, id)
}

// MarkSent transitions an invoice to sent
func (s *InvoiceService) MarkSent(ctx context.Context, userID, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, userID, id, func(inv *invoicing.Invoice) error {
		inv.MarkSent()
		return nil
	})
}

// MarkPaid transitions an invoice to paid
func (s *InvoiceService) MarkPaid(ctx context.Context, userID, id uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, userID, id, func(inv *invoicing.Invoice) error {
		inv.MarkPaid()
		return nil
	})
}

// CheckOverdue re-evaluates a sent invoice against today's date and flips it
// to overdue when the due date has passed
func (s *InvoiceService) CheckOverdue(ctx context.Context, userID, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if invoice.CheckOverdue(time.Now().UTC()) {
		if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
			return nil, err
		}
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// ExportPDF renders an invoice to PDF and returns the document bytes together
// with the download filename
func (s *InvoiceService) ExportPDF(ctx context.Context, userID, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.loadWithClient(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	data, err := s.renderer.Render(buildDocument(invoice))
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
	return data, filename, nil
}

// transition loads an invoice, applies a status mutation and persists it
func (s *InvoiceService) transition(ctx context.Context, userID, id uuid.UUID, mutate func(*invoicing.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	resp := ToInvoiceResponse(invoice)
	return &resp, nil
}

// loadWithClient loads an invoice and resolves its client. A missing client
// leaves the invoice without a client block rather than failing.
func (s *InvoiceService) loadWithClient(ctx context.Context, userID, id uuid.UUID) (*invoicing.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetByID(ctx, userID, invoice.ClientID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	invoice.Client = client
	return invoice, nil
}

// buildLineItems converts request items into validated domain line items.
// Any invalid item rejects the whole set.
func buildLineItems(reqs []LineItemRequest) ([]*invoicing.LineItem, error) {
	items := make([]*invoicing.LineItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := invoicing.NewLineItem(r.Description, r.Quantity, r.UnitRate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// buildDocument maps a hydrated invoice into the render-ready document
func buildDocument(inv *invoicing.Invoice) pdf.InvoiceDocument {
	doc := pdf.InvoiceDocument{
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Status:        inv.Status.String(),
		TaxRate:       inv.TaxRate,
		Subtotal:      inv.Subtotal(),
		Tax:           inv.Tax(),
		Total:         inv.Total(),
	}

	doc.Items = make([]pdf.LineEntry, len(inv.LineItems))
	for i, item := range inv.LineItems {
		doc.Items[i] = pdf.LineEntry{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitRate:    item.UnitRate,
			Amount:      item.Amount(),
		}
	}

	if inv.Client != nil {
		addr := inv.Client.Address()
		doc.Client = &pdf.ClientBlock{
			Name:     inv.Client.Name,
			Street:   addr.Street(),
			CityLine: addr.CityLine(),
			Country:  addr.Country(),
			Email:    inv.Client.Email,
			Phone:    inv.Client.Phone,
		}
	}
	return doc
}
