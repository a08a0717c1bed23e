package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// OrderReference points at the order an invoice settles.
type OrderReference struct {
	OrderID       string
	ReferenceDate string
	Description   string
}

// Fragment renders the OrderReference as a pre-escaped XML fragment.
func (o *OrderReference) Fragment() string {
	e := xmltree.New("OrderReference").
		WithTextElement("OrderID", o.OrderID)
	if o.ReferenceDate != "" {
		e.WithTextElement("ReferenceDate", o.ReferenceDate)
	}
	if o.Description != "" {
		e.WithTextElement("Description", o.Description)
	}
	return e.String()
}
