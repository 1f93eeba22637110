package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicegen/backend/internal/domain/invoicing"
)

// ClientModel is the persistence model for invoicing.Client
type ClientModel struct {
	OwnedAggregateModel
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(100);not null"`
	State   string `gorm:"type:varchar(100);not null"`
	ZipCode string `gorm:"type:varchar(20);not null"`
	Country string `gorm:"type:varchar(100);not null"`
	Phone   string `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for ClientModel
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the model to a domain client
func (m *ClientModel) ToDomain() *invoicing.Client {
	client := &invoicing.Client{
		Name:    m.Name,
		Email:   m.Email,
		Street:  m.Street,
		City:    m.City,
		State:   m.State,
		ZipCode: m.ZipCode,
		Country: m.Country,
		Phone:   m.Phone,
	}
	m.PopulateOwnedAggregateRoot(&client.OwnedAggregateRoot)
	return client
}

// ClientModelFromDomain converts a domain client to its persistence model
func ClientModelFromDomain(c *invoicing.Client) *ClientModel {
	m := &ClientModel{
		Name:    c.Name,
		Email:   c.Email,
		Street:  c.Street,
		City:    c.City,
		State:   c.State,
		ZipCode: c.ZipCode,
		Country: c.Country,
		Phone:   c.Phone,
	}
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	return m
}

// InvoiceModel is the persistence model for invoicing.Invoice
type InvoiceModel struct {
	OwnedAggregateModel
	ClientID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	InvoiceNumber string          `gorm:"type:varchar(50);not null"`
	InvoiceDate   time.Time       `gorm:"not null"`
	DueDate       time.Time       `gorm:"not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status        string          `gorm:"type:varchar(20);not null;index"`
	SentAt        *time.Time
	PaidAt        *time.Time
	LineItems     []LineItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain invoice
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	items := make([]*invoicing.LineItem, len(m.LineItems))
	for i := range m.LineItems {
		items[i] = m.LineItems[i].ToDomain()
	}

	inv := &invoicing.Invoice{
		ClientID:      m.ClientID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		TaxRate:       m.TaxRate,
		Status:        invoicing.InvoiceStatus(m.Status),
		SentAt:        m.SentAt,
		PaidAt:        m.PaidAt,
		LineItems:     items,
	}
	m.PopulateOwnedAggregateRoot(&inv.OwnedAggregateRoot)
	return inv
}

// InvoiceModelFromDomain converts a domain invoice to its persistence model
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	items := make([]LineItemModel, len(inv.LineItems))
	for i, item := range inv.LineItems {
		items[i] = *LineItemModelFromDomain(item, inv.ID)
		items[i].Position = i
	}

	m := &InvoiceModel{
		ClientID:      inv.ClientID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		TaxRate:       inv.TaxRate,
		Status:        inv.Status.String(),
		SentAt:        inv.SentAt,
		PaidAt:        inv.PaidAt,
		LineItems:     items,
	}
	m.FromDomainOwnedAggregateRoot(inv.OwnedAggregateRoot)
	return m
}

// LineItemModel is the persistence model for invoicing.LineItem.
// Line items are owned by their invoice and replaced wholesale on update.
type LineItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(500);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitRate    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Position    int             `gorm:"not null"` // preserves insertion order
}

// TableName returns the table name for LineItemModel
func (LineItemModel) TableName() string {
	return "line_items"
}

// ToDomain converts the model to a domain line item
func (m *LineItemModel) ToDomain() *invoicing.LineItem {
	invoiceID := m.InvoiceID
	return &invoicing.LineItem{
		ID:          m.ID,
		InvoiceID:   &invoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitRate:    m.UnitRate,
	}
}

// LineItemModelFromDomain converts a domain line item to its persistence model
func LineItemModelFromDomain(item *invoicing.LineItem, invoiceID uuid.UUID) *LineItemModel {
	return &LineItemModel{
		ID:          item.ID,
		InvoiceID:   invoiceID,
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitRate:    item.UnitRate,
	}
}
