// Package inspect parses generated invoice documents and checks their
// structure. It backs the validate and info surfaces; the generation core
// never depends on it.
package inspect

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/rezonia/ebinvoice/internal/ebinterface"
)

// requiredElements are the direct children every invoice document must have,
// in schema order.
var requiredElements = []string{
	"InvoiceNumber",
	"InvoiceDate",
	"Biller",
	"InvoiceRecipient",
	"Details",
	"Tax",
	"TotalGrossAmount",
	"PayableAmount",
}

// Summary describes the high-level content of an invoice document.
type Summary struct {
	DocumentType     string `json:"document_type"`
	GeneratingSystem string `json:"generating_system"`
	InvoiceNumber    string `json:"invoice_number"`
	InvoiceDate      string `json:"invoice_date"`
	Currency         string `json:"currency"`
	LineItems        int    `json:"line_items"`
	TaxGroups        int    `json:"tax_groups"`
	TotalGrossAmount string `json:"total_gross_amount"`
	PayableAmount    string `json:"payable_amount"`
}

// Result is the outcome of a structural validation.
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty XML document")
	}
	return root, nil
}

func childText(root *etree.Element, name string) string {
	if c := root.SelectElement(name); c != nil {
		return c.Text()
	}
	return ""
}

// Inspect parses an invoice document and summarizes it.
func Inspect(data []byte) (*Summary, error) {
	root, err := parse(data)
	if err != nil {
		return nil, err
	}
	if root.Tag != "Invoice" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	s := &Summary{
		DocumentType:     root.SelectAttrValue("DocumentType", ""),
		GeneratingSystem: root.SelectAttrValue("GeneratingSystem", ""),
		InvoiceNumber:    childText(root, "InvoiceNumber"),
		InvoiceDate:      childText(root, "InvoiceDate"),
		Currency:         root.SelectAttrValue("InvoiceCurrency", ""),
		TotalGrossAmount: childText(root, "TotalGrossAmount"),
		PayableAmount:    childText(root, "PayableAmount"),
	}

	if details := root.SelectElement("Details"); details != nil {
		if itemList := details.SelectElement("ItemList"); itemList != nil {
			s.LineItems = len(itemList.SelectElements("ListLineItem"))
		}
	}
	if tax := root.SelectElement("Tax"); tax != nil {
		s.TaxGroups = len(tax.SelectElements("TaxItem"))
	}

	return s, nil
}

// Validate checks that the document is well formed, rooted at Invoice with
// the expected namespace, and carries every required child element.
func Validate(data []byte) *Result {
	result := &Result{Valid: true}

	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	root, err := parse(data)
	if err != nil {
		fail("%v", err)
		return result
	}

	if root.Tag != "Invoice" {
		fail("root element is %q, want Invoice", root.Tag)
		return result
	}
	if ns := root.SelectAttrValue("xmlns", ""); ns != ebinterface.Namespace {
		fail("namespace is %q, want %q", ns, ebinterface.Namespace)
	}
	for _, attr := range []string{"GeneratingSystem", "DocumentType", "InvoiceCurrency"} {
		if root.SelectAttr(attr) == nil {
			fail("missing required attribute %s", attr)
		}
	}
	for _, name := range requiredElements {
		if root.SelectElement(name) == nil {
			fail("missing required element %s", name)
		}
	}

	return result
}
