package ebinterface

import (
	"strconv"

	dec "github.com/shopspring/decimal"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/xmltree"
)

// LineItem is one billable row of an invoice. It is assembled once and not
// modified afterwards; all amount methods are pure.
type LineItem struct {
	// PositionNumber is emitted when greater than zero.
	PositionNumber int
	Description    []string
	Quantity       dec.Decimal
	Unit           string
	UnitPrice      dec.Decimal
	// BaseQuantity divides the quantity/price product; nil means 1. The
	// attribute renders in minimal decimal form, so 2.50 serializes as "2.5".
	BaseQuantity          *dec.Decimal
	ReductionAndSurcharge *ReductionAndSurchargeListLineItemDetails
	TaxItem               TaxItem
}

func (li *LineItem) netAdjustment() dec.Decimal {
	if li.ReductionAndSurcharge == nil {
		return decimal.Zero
	}
	return li.ReductionAndSurcharge.Sum()
}

// LineItemAmount is quantity * unit price / base quantity plus the net
// adjustment, rounded to two digits once, after the whole expression.
func (li *LineItem) LineItemAmount() dec.Decimal {
	amount := li.Quantity.Mul(li.UnitPrice)
	if li.BaseQuantity != nil {
		amount = amount.Div(*li.BaseQuantity)
	}
	return decimal.Round(amount.Add(li.netAdjustment()), 2)
}

// TaxableAmount is quantity * unit price plus the net adjustment. Unlike
// LineItemAmount it keeps the unrounded product and ignores the base
// quantity; the schema reports the two figures independently and they may
// legitimately differ.
func (li *LineItem) TaxableAmount() dec.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Add(li.netAdjustment())
}

// LineItemTotalGrossAmount is the line item amount including tax. It is not
// rounded here; the invoice total rounds once after summing all items.
func (li *LineItem) LineItemTotalGrossAmount() dec.Decimal {
	return decimal.AddPercent(li.LineItemAmount(), li.TaxItem.TaxPercent)
}

// AsXML renders the ListLineItem element. Quantity and unit price render at
// four digits, the line item amount at two.
func (li *LineItem) AsXML() *xmltree.Element {
	e := xmltree.New("ListLineItem")

	if li.PositionNumber > 0 {
		e.WithTextElement("PositionNumber", strconv.Itoa(li.PositionNumber))
	}
	for _, d := range li.Description {
		e.WithTextElement("Description", d)
	}

	e.WithElement(xmltree.New("Quantity").
		WithAttr("Unit", li.Unit).
		WithText(li.Quantity.StringFixed(4)))

	unitPrice := xmltree.New("UnitPrice").WithText(li.UnitPrice.StringFixed(4))
	if li.BaseQuantity != nil {
		unitPrice.WithAttr("BaseQuantity", li.BaseQuantity.String())
	}
	e.WithElement(unitPrice)

	if li.ReductionAndSurcharge != nil && !li.ReductionAndSurcharge.empty() {
		e.WithElement(li.ReductionAndSurcharge.AsXML())
	}

	e.WithElement(li.TaxItem.AsXML(li.TaxableAmount()))
	e.WithTextElement("LineItemAmount", li.LineItemAmount().StringFixed(2))

	return e
}

// Details is the ordered collection of an invoice's line items.
type Details struct {
	Items []LineItem
}

// AsXML renders Details wrapping one ItemList.
func (d *Details) AsXML() *xmltree.Element {
	itemList := xmltree.New("ItemList")
	for i := range d.Items {
		itemList.WithElement(d.Items[i].AsXML())
	}
	return xmltree.New("Details").WithElement(itemList)
}
