package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// Biller is the invoicing party.
type Biller struct {
	VATIdentificationNumber string
	FurtherIdentifications  []FurtherIdentification
	OrderReference          *OrderReference
	Address                 *Address
	Contact                 *Contact
}

// Fragment renders the Biller as a pre-escaped XML fragment. Sub-fragments
// from Address, Contact and OrderReference are spliced in as-is; they escape
// their own content.
func (b *Biller) Fragment() string {
	e := xmltree.New("Biller").
		WithTextElement("VATIdentificationNumber", b.VATIdentificationNumber)

	for _, fi := range b.FurtherIdentifications {
		e.WithElement(fi.AsXML())
	}
	if b.OrderReference != nil {
		e.WithFragment(b.OrderReference.Fragment())
	}
	if b.Address != nil {
		e.WithFragment(b.Address.Fragment())
	}
	if b.Contact != nil {
		e.WithFragment(b.Contact.Fragment())
	}
	return e.String()
}
