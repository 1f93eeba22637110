package invoicing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicegen/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// IsValid checks if the status value is one of the known states
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// String returns the string representation
func (s InvoiceStatus) String() string {
	return string(s)
}

var oneHundred = decimal.NewFromInt(100)

// Invoice is the aggregate root for a bill issued to a client.
// Monetary figures are always derived from the line items; they are
// recomputed on demand and never stored.
type Invoice struct {
	shared.OwnedAggregateRoot
	ClientID      uuid.UUID
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	TaxRate       decimal.Decimal
	Status        InvoiceStatus
	SentAt        *time.Time
	PaidAt        *time.Time
	LineItems     []*LineItem

	// Client is the resolved billing target, populated by the application
	// layer for rendering. Not part of the persisted aggregate state.
	Client *Client
}

// NewInvoice creates a new invoice in draft status. The invoice must carry at
// least one line item, the due date may not precede the invoice date, and the
// tax rate is a percentage between 0 and 100.
func NewInvoice(userID, clientID uuid.UUID, number string, invoiceDate, dueDate time.Time, taxRate decimal.Decimal, items []*LineItem) (*Invoice, error) {
	if strings.TrimSpace(number) == "" {
		return nil, shared.NewValidationError("Invoice number cannot be empty")
	}
	if err := validateDateOrder(invoiceDate, dueDate); err != nil {
		return nil, err
	}
	if err := validateTaxRate(taxRate); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, shared.NewValidationError("Invoice must have at least one line item")
	}

	inv := &Invoice{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(userID),
		ClientID:           clientID,
		InvoiceNumber:      number,
		InvoiceDate:        invoiceDate,
		DueDate:            dueDate,
		TaxRate:            taxRate,
		Status:             InvoiceStatusDraft,
		LineItems:          make([]*LineItem, 0, len(items)),
	}
	for _, item := range items {
		item.AttachTo(inv.ID)
		inv.LineItems = append(inv.LineItems, item)
	}
	return inv, nil
}

// Subtotal returns the sum of all line item amounts
func (i *Invoice) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range i.LineItems {
		subtotal = subtotal.Add(item.Amount())
	}
	return subtotal
}

// Tax returns subtotal scaled by the percentage tax rate
func (i *Invoice) Tax() decimal.Decimal {
	return i.Subtotal().Mul(i.TaxRate).Div(oneHundred)
}

// Total returns subtotal plus tax
func (i *Invoice) Total() decimal.Decimal {
	return i.Subtotal().Add(i.Tax())
}

// AddLineItem appends a line item, preserving insertion order
func (i *Invoice) AddLineItem(item *LineItem) {
	item.AttachTo(i.ID)
	i.LineItems = append(i.LineItems, item)
	i.Touch()
}

// RemoveLineItem removes the line item with the given ID. An unknown ID is a
// no-op. Removing the last remaining item is rejected so the invoice never
// becomes empty.
func (i *Invoice) RemoveLineItem(itemID uuid.UUID) error {
	idx := -1
	for n, item := range i.LineItems {
		if item.ID == itemID {
			idx = n
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if len(i.LineItems) == 1 {
		return shared.NewValidationError("Invoice must have at least one line item")
	}
	i.LineItems = append(i.LineItems[:idx], i.LineItems[idx+1:]...)
	i.Touch()
	return nil
}

// ReplaceLineItems discards the current line items and installs the given set.
// The replacement set must be non-empty.
func (i *Invoice) ReplaceLineItems(items []*LineItem) error {
	if len(items) == 0 {
		return shared.NewValidationError("Invoice must have at least one line item")
	}
	replacement := make([]*LineItem, 0, len(items))
	for _, item := range items {
		item.AttachTo(i.ID)
		replacement = append(replacement, item)
	}
	i.LineItems = replacement
	i.Touch()
	return nil
}

// InvoiceUpdate carries a partial update of the invoice header fields
type InvoiceUpdate struct {
	ClientID      *uuid.UUID
	InvoiceNumber *string
	InvoiceDate   *time.Time
	DueDate       *time.Time
	TaxRate       *decimal.Decimal
}

// UpdateDetails applies a partial header update. The merged date pair is
// re-validated so an update can never leave the due date before the invoice date.
func (i *Invoice) UpdateDetails(upd InvoiceUpdate) error {
	if upd.InvoiceNumber != nil && strings.TrimSpace(*upd.InvoiceNumber) == "" {
		return shared.NewValidationError("Invoice number cannot be empty")
	}
	if upd.TaxRate != nil {
		if err := validateTaxRate(*upd.TaxRate); err != nil {
			return err
		}
	}

	invoiceDate := i.InvoiceDate
	if upd.InvoiceDate != nil {
		invoiceDate = *upd.InvoiceDate
	}
	dueDate := i.DueDate
	if upd.DueDate != nil {
		dueDate = *upd.DueDate
	}
	if err := validateDateOrder(invoiceDate, dueDate); err != nil {
		return err
	}

	if upd.ClientID != nil {
		i.ClientID = *upd.ClientID
	}
	if upd.InvoiceNumber != nil {
		i.InvoiceNumber = *upd.InvoiceNumber
	}
	if upd.TaxRate != nil {
		i.TaxRate = *upd.TaxRate
	}
	i.InvoiceDate = invoiceDate
	i.DueDate = dueDate

	i.Touch()
	i.IncrementVersion()
	return nil
}

// MarkSent moves the invoice to sent. The sent timestamp is recorded on the
// first transition only and is never overwritten.
func (i *Invoice) MarkSent() {
	i.Status = InvoiceStatusSent
	if i.SentAt == nil {
		now := time.Now().UTC()
		i.SentAt = &now
	}
	i.Touch()
}

// MarkPaid moves the invoice to paid, recording the paid timestamp on the
// first transition only. Paying straight from draft is allowed.
func (i *Invoice) MarkPaid() {
	i.Status = InvoiceStatusPaid
	if i.PaidAt == nil {
		now := time.Now().UTC()
		i.PaidAt = &now
	}
	i.Touch()
}

// UpdateStatus applies a status transition by value. Regressing to draft after
// the invoice has left draft is rejected.
func (i *Invoice) UpdateStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewValidationError("Invalid invoice status: " + status.String())
	}
	switch status {
	case InvoiceStatusDraft:
		if i.Status != InvoiceStatusDraft {
			return shared.NewDomainError(shared.ErrCodeInvalidState, "Invoice cannot return to draft")
		}
	case InvoiceStatusSent:
		i.MarkSent()
	case InvoiceStatusPaid:
		i.MarkPaid()
	case InvoiceStatusOverdue:
		i.Status = InvoiceStatusOverdue
		i.Touch()
	}
	return nil
}

// CheckOverdue flips a sent invoice to overdue once the due date has passed.
// It reports whether the transition happened. Invoices in any other status,
// or still within their term, are left untouched.
func (i *Invoice) CheckOverdue(today time.Time) bool {
	if i.Status != InvoiceStatusSent {
		return false
	}
	if !today.After(i.DueDate) {
		return false
	}
	i.Status = InvoiceStatusOverdue
	i.Touch()
	return true
}

func validateDateOrder(invoiceDate, dueDate time.Time) error {
	if dueDate.Before(invoiceDate) {
		return shared.NewValidationError("Due date cannot be before invoice date")
	}
	return nil
}

func validateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return shared.NewValidationError("Tax rate must be between 0 and 100")
	}
	return nil
}
