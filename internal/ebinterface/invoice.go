// Package ebinterface builds ebInterface 6.1 invoice documents from an
// in-memory invoice model and serializes them deterministically. All
// computation is pure and allocation-only; independent invoices may be
// serialized concurrently.
package ebinterface

import (
	dec "github.com/shopspring/decimal"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/xmltree"
)

// Namespace is the fixed schema namespace of the generated documents.
const Namespace = "http://www.ebinterface.at/schema/6p1/"

// Prolog is the fixed XML declaration emitted before the root element, with
// no whitespace in between.
const Prolog = `<?xml version="1.0" encoding="UTF-8"?>`

// Invoice is the aggregate root. Populate it fully, then call XMLString
// once; the value is not mutated by serialization.
type Invoice struct {
	GeneratingSystem string
	DocumentType     DocumentType
	InvoiceCurrency  string
	DocumentTitle    string
	Language         string
	InvoiceNumber    string
	InvoiceDate      string
	Biller           Biller
	InvoiceRecipient InvoiceRecipient
	Details          Details
	PaymentMethod    *PaymentMethod
}

// XMLString serializes the invoice to a single UTF-8 XML document.
//
// Fixed element order: InvoiceNumber, InvoiceDate, Biller, InvoiceRecipient,
// Details, PaymentMethod (when present, always before the tax summary), Tax,
// TotalGrossAmount, PayableAmount. A failing payment-method validation
// aborts assembly; no partial XML is ever returned.
//
// PayableAmount currently always equals TotalGrossAmount; prepaid amounts,
// rounding amounts and below-the-line items are intentionally not modeled.
func (inv *Invoice) XMLString() (string, error) {
	root := xmltree.New("Invoice").
		WithAttr("xmlns", Namespace).
		WithAttr("GeneratingSystem", inv.GeneratingSystem).
		WithAttr("DocumentType", inv.DocumentType.Code()).
		WithAttr("InvoiceCurrency", inv.InvoiceCurrency)
	if inv.DocumentTitle != "" {
		root.WithAttr("DocumentTitle", inv.DocumentTitle)
	}
	if inv.Language != "" {
		root.WithAttr("Language", inv.Language)
	}

	root.WithTextElement("InvoiceNumber", inv.InvoiceNumber).
		WithTextElement("InvoiceDate", inv.InvoiceDate).
		WithFragment(inv.Biller.Fragment()).
		WithFragment(inv.InvoiceRecipient.Fragment()).
		WithElement(inv.Details.AsXML())

	if inv.PaymentMethod != nil {
		pm, err := inv.PaymentMethod.AsXML()
		if err != nil {
			return "", err
		}
		root.WithElement(pm)
	}

	root.WithElement(aggregateTax(inv.Details.Items))

	// Gross amounts stay unrounded while summing; the total rounds once.
	gross := make([]dec.Decimal, len(inv.Details.Items))
	for i := range inv.Details.Items {
		gross[i] = inv.Details.Items[i].LineItemTotalGrossAmount()
	}
	totalGross := decimal.Sum(gross)
	payable := totalGross

	root.WithTextElement("TotalGrossAmount", totalGross.StringFixed(2)).
		WithTextElement("PayableAmount", payable.StringFixed(2))

	return Prolog + root.String(), nil
}
