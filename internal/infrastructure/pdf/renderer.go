package pdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientBlock holds the billing target details printed on the document.
// The block is omitted entirely when no client is attached.
type ClientBlock struct {
	Name    string
	Street  string
	// CityLine is the pre-formatted "city, state zip" display line
	CityLine string
	Country  string
	Email    string
	Phone    string
}

// LineEntry is a single row of the line-item table
type LineEntry struct {
	Description string
	Quantity    decimal.Decimal
	UnitRate    decimal.Decimal
	Amount      decimal.Decimal
}

// InvoiceDocument is the render-ready projection of an invoice.
// The application layer builds it from the domain aggregate; the renderer
// trusts its content and performs no validation beyond emptiness.
type InvoiceDocument struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	Status        string
	TaxRate       decimal.Decimal
	Client        *ClientBlock
	Items         []LineEntry
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// InvoiceRenderer renders an invoice document into PDF bytes
type InvoiceRenderer interface {
	Render(doc InvoiceDocument) ([]byte, error)
}

// RenderError represents an error during PDF rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeEmptyDocument = "EMPTY_DOCUMENT"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
