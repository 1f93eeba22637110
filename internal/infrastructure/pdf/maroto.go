package pdf

import (
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/shopspring/decimal"
)

const dateLayout = "January 2, 2006"

// MarotoRenderer renders invoices with a fixed letter-size layout.
// The document is assembled in four stages appended top to bottom:
// header, client block, line-item table, totals.
type MarotoRenderer struct{}

// NewMarotoRenderer creates a new MarotoRenderer
func NewMarotoRenderer() *MarotoRenderer {
	return &MarotoRenderer{}
}

// Render implements InvoiceRenderer
func (r *MarotoRenderer) Render(doc InvoiceDocument) ([]byte, error) {
	if doc.InvoiceNumber == "" {
		return nil, NewRenderError(ErrCodeEmptyDocument, "invoice document has no content", nil)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		Build()
	m := maroto.New(cfg)

	r.addHeader(m, doc)
	if doc.Client != nil {
		r.addClientBlock(m, *doc.Client)
	}
	r.addItemsTable(m, doc.Items)
	r.addTotals(m, doc)

	document, err := m.Generate()
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to generate pdf", err)
	}
	return document.GetBytes(), nil
}

func (r *MarotoRenderer) addHeader(m core.Maroto, doc InvoiceDocument) {
	m.AddRow(12, text.NewCol(12, "INVOICE", titleStyle()))
	m.AddRow(7, text.NewCol(12, "Invoice #: "+doc.InvoiceNumber, labelStyle()))
	m.AddRow(6, text.NewCol(12, "Date: "+doc.InvoiceDate.Format(dateLayout), bodyStyle()))
	m.AddRow(6, text.NewCol(12, "Due Date: "+doc.DueDate.Format(dateLayout), bodyStyle()))
	m.AddRow(6, text.NewCol(12, "Status: "+strings.ToUpper(doc.Status), bodyStyle()))
	m.AddRow(4)
}

func (r *MarotoRenderer) addClientBlock(m core.Maroto, client ClientBlock) {
	m.AddRow(7, text.NewCol(12, "Bill To:", labelStyle()))
	m.AddRow(6, text.NewCol(12, client.Name, bodyStyle()))
	m.AddRow(6, text.NewCol(12, client.Street, bodyStyle()))
	m.AddRow(6, text.NewCol(12, client.CityLine, bodyStyle()))
	m.AddRow(6, text.NewCol(12, client.Country, bodyStyle()))
	m.AddRow(6, text.NewCol(12, client.Email, bodyStyle()))
	m.AddRow(6, text.NewCol(12, client.Phone, bodyStyle()))
	m.AddRow(4)
}

func (r *MarotoRenderer) addItemsTable(m core.Maroto, items []LineEntry) {
	m.AddRow(8,
		text.NewCol(6, "Description", labelStyle()),
		text.NewCol(2, "Quantity", labelRightStyle()),
		text.NewCol(2, "Unit Rate", labelRightStyle()),
		text.NewCol(2, "Amount", labelRightStyle()),
	)
	for _, item := range items {
		m.AddRow(6,
			text.NewCol(6, item.Description, bodyStyle()),
			text.NewCol(2, item.Quantity.StringFixed(2), bodyRightStyle()),
			text.NewCol(2, money(item.UnitRate), bodyRightStyle()),
			text.NewCol(2, money(item.Amount), bodyRightStyle()),
		)
	}
	m.AddRow(4)
}

func (r *MarotoRenderer) addTotals(m core.Maroto, doc InvoiceDocument) {
	m.AddRow(6,
		text.NewCol(8, "", bodyStyle()),
		text.NewCol(2, "Subtotal:", bodyRightStyle()),
		text.NewCol(2, money(doc.Subtotal), bodyRightStyle()),
	)
	m.AddRow(6,
		text.NewCol(8, "", bodyStyle()),
		text.NewCol(2, "Tax ("+doc.TaxRate.String()+"%):", bodyRightStyle()),
		text.NewCol(2, money(doc.Tax), bodyRightStyle()),
	)
	m.AddRow(8,
		text.NewCol(8, "", bodyStyle()),
		text.NewCol(2, "Total:", totalLabelStyle()),
		text.NewCol(2, money(doc.Total), totalValueStyle()),
	)
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
