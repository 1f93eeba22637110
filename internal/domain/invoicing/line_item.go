package invoicing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/invoicegen/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// LineItem represents a single billable entry on an invoice.
// It is immutable after creation except for reassignment of its owning invoice.
type LineItem struct {
	ID          uuid.UUID
	InvoiceID   *uuid.UUID
	Description string
	Quantity    decimal.Decimal
	UnitRate    decimal.Decimal
}

// NewLineItem creates a new line item with a generated ID.
// Description must be non-empty; quantity and unit rate must be strictly positive.
func NewLineItem(description string, quantity, unitRate decimal.Decimal) (*LineItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Quantity must be greater than 0")
	}
	if unitRate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Unit rate must be greater than 0")
	}

	return &LineItem{
		ID:          uuid.New(),
		Description: description,
		Quantity:    quantity,
		UnitRate:    unitRate,
	}, nil
}

// Amount returns quantity × unit rate in exact decimal arithmetic.
// Pure: no rounding, no side effects.
func (li *LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitRate)
}

// AttachTo assigns the line item to an owning invoice
func (li *LineItem) AttachTo(invoiceID uuid.UUID) {
	li.InvoiceID = &invoiceID
}
