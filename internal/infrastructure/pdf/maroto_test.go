package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() InvoiceDocument {
	return InvoiceDocument{
		InvoiceNumber: "INV-001",
		InvoiceDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Status:        "draft",
		TaxRate:       decimal.NewFromFloat(8.5),
		Client: &ClientBlock{
			Name:     "Acme Corp",
			Street:   "123 Main St",
			CityLine: "Springfield, IL 62701",
			Country:  "USA",
			Email:    "billing@acme.test",
			Phone:    "+1-555-0100",
		},
		Items: []LineEntry{
			{Description: "Development", Quantity: decimal.NewFromInt(40), UnitRate: decimal.NewFromInt(150), Amount: decimal.NewFromInt(6000)},
			{Description: "Design", Quantity: decimal.NewFromInt(20), UnitRate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(2000)},
		},
		Subtotal: decimal.NewFromInt(8000),
		Tax:      decimal.NewFromInt(680),
		Total:    decimal.NewFromInt(8680),
	}
}

func TestMarotoRendererRender(t *testing.T) {
	renderer := NewMarotoRenderer()

	t.Run("produces a pdf document", func(t *testing.T) {
		data, err := renderer.Render(sampleDocument())
		require.NoError(t, err)
		require.NotEmpty(t, data)
		assert.Equal(t, "%PDF-", string(data[:5]))
	})

	t.Run("renders without a client block", func(t *testing.T) {
		doc := sampleDocument()
		doc.Client = nil

		data, err := renderer.Render(doc)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]))
	})

	t.Run("renders with zero line items", func(t *testing.T) {
		doc := sampleDocument()
		doc.Items = nil
		doc.Subtotal = decimal.Zero
		doc.Tax = decimal.Zero
		doc.Total = decimal.Zero

		data, err := renderer.Render(doc)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]))
	})

	t.Run("rejects an empty document", func(t *testing.T) {
		_, err := renderer.Render(InvoiceDocument{})
		require.Error(t, err)

		var rerr *RenderError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, ErrCodeEmptyDocument, rerr.Code)
	})

	t.Run("same content renders consistently", func(t *testing.T) {
		first, err := renderer.Render(sampleDocument())
		require.NoError(t, err)
		second, err := renderer.Render(sampleDocument())
		require.NoError(t, err)

		// byte equality is not guaranteed (creation timestamps), but size
		// should match for identical content
		assert.Equal(t, len(first), len(second))
	})
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1234.50", money(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", money(decimal.Zero))
	assert.Equal(t, "$99.99", money(decimal.NewFromFloat(99.99)))
}

func TestRenderError(t *testing.T) {
	inner := assert.AnError
	err := NewRenderError(ErrCodeRenderFailed, "failed to generate pdf", inner)

	assert.Contains(t, err.Error(), "failed to generate pdf")
	assert.ErrorIs(t, err, inner)

	bare := NewRenderError(ErrCodeEmptyDocument, "empty", nil)
	assert.Equal(t, "empty", bare.Error())
}
