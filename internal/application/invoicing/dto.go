package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicegen/backend/internal/domain/invoicing"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Street  string `json:"street" binding:"required,max=255"`
	City    string `json:"city" binding:"required,max=100"`
	State   string `json:"state" binding:"required,max=100"`
	ZipCode string `json:"zip_code" binding:"required,max=20"`
	Country string `json:"country" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"required,max=50"`
}

// UpdateClientRequest represents a partial update of a client.
// Nil fields keep their current values.
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`
	Street  *string `json:"street" binding:"omitempty,max=255"`
	City    *string `json:"city" binding:"omitempty,max=100"`
	State   *string `json:"state" binding:"omitempty,max=100"`
	ZipCode *string `json:"zip_code" binding:"omitempty,max=20"`
	Country *string `json:"country" binding:"omitempty,max=100"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse converts a domain Client to ClientResponse
func ToClientResponse(c *invoicing.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Street:    c.Street,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Country:   c.Country,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain Clients to responses
func ToClientResponses(clients []*invoicing.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}
	return responses
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// LineItemRequest represents a line item in create/update requests
type LineItemRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitRate    decimal.Decimal `json:"unit_rate" binding:"required"`
}

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	ClientID      uuid.UUID         `json:"client_id" binding:"required"`
	InvoiceNumber string            `json:"invoice_number" binding:"required,min=1,max=50"`
	InvoiceDate   time.Time         `json:"invoice_date" binding:"required"`
	DueDate       time.Time         `json:"due_date" binding:"required"`
	TaxRate       decimal.Decimal   `json:"tax_rate"`
	LineItems     []LineItemRequest `json:"line_items" binding:"required"`
}

// UpdateInvoiceRequest represents a partial update of an invoice.
// Nil fields keep their current values; a non-nil LineItems slice replaces
// the stored line items wholesale.
type UpdateInvoiceRequest struct {
	ClientID      *uuid.UUID        `json:"client_id"`
	InvoiceNumber *string           `json:"invoice_number" binding:"omitempty,min=1,max=50"`
	InvoiceDate   *time.Time        `json:"invoice_date"`
	DueDate       *time.Time        `json:"due_date"`
	TaxRate       *decimal.Decimal  `json:"tax_rate"`
	Status        *string           `json:"status" binding:"omitempty,oneof=draft sent paid overdue"`
	LineItems     []LineItemRequest `json:"line_items"`
}

// LineItemResponse represents a line item in API responses
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse represents an invoice in API responses. Monetary figures
// are derived from the line items at response time.
type InvoiceResponse struct {
	ID            uuid.UUID          `json:"id"`
	ClientID      uuid.UUID          `json:"client_id"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       time.Time          `json:"due_date"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	Status        string             `json:"status"`
	SentAt        *time.Time         `json:"sent_at,omitempty"`
	PaidAt        *time.Time         `json:"paid_at,omitempty"`
	LineItems     []LineItemResponse `json:"line_items"`
	Client        *ClientResponse    `json:"client,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *invoicing.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.LineItems))
	for i, item := range inv.LineItems {
		items[i] = LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitRate:    item.UnitRate,
			Amount:      item.Amount(),
		}
	}

	resp := InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		TaxRate:       inv.TaxRate,
		Status:        inv.Status.String(),
		SentAt:        inv.SentAt,
		PaidAt:        inv.PaidAt,
		LineItems:     items,
		Subtotal:      inv.Subtotal(),
		Tax:           inv.Tax(),
		Total:         inv.Total(),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if inv.Client != nil {
		client := ToClientResponse(inv.Client)
		resp.Client = &client
	}
	return resp
}

// ToInvoiceResponses converts a slice of domain Invoices to responses
func ToInvoiceResponses(invoices []*invoicing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		responses[i] = ToInvoiceResponse(inv)
	}
	return responses
}
