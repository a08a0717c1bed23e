package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// InvoiceRecipient is the party the invoice is addressed to.
type InvoiceRecipient struct {
	VATIdentificationNumber string
	FurtherIdentifications  []FurtherIdentification
	OrderReference          *OrderReference
	Address                 *Address
	Contact                 *Contact
}

// Fragment renders the InvoiceRecipient as a pre-escaped XML fragment.
func (r *InvoiceRecipient) Fragment() string {
	e := xmltree.New("InvoiceRecipient").
		WithTextElement("VATIdentificationNumber", r.VATIdentificationNumber)

	for _, fi := range r.FurtherIdentifications {
		e.WithElement(fi.AsXML())
	}
	if r.OrderReference != nil {
		e.WithFragment(r.OrderReference.Fragment())
	}
	if r.Address != nil {
		e.WithFragment(r.Address.Fragment())
	}
	if r.Contact != nil {
		e.WithFragment(r.Contact.Fragment())
	}
	return e.String()
}
