package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// Address is a postal address fragment used by biller and recipient.
type Address struct {
	Name        string
	Street      string
	Town        string
	ZIP         string
	Country     string
	CountryCode string
	Phone       []string
	Email       []string
}

// Fragment renders the Address as a pre-escaped XML fragment. Street always
// renders, empty or not; the schema expects the element to be present.
func (a *Address) Fragment() string {
	e := xmltree.New("Address").
		WithTextElement("Name", a.Name).
		WithTextElement("Street", a.Street).
		WithTextElement("Town", a.Town).
		WithTextElement("ZIP", a.ZIP)

	country := xmltree.New("Country")
	if a.CountryCode != "" {
		country.WithAttr("CountryCode", a.CountryCode)
	}
	e.WithElement(country.WithText(a.Country))

	for _, p := range a.Phone {
		e.WithTextElement("Phone", p)
	}
	for _, m := range a.Email {
		e.WithTextElement("Email", m)
	}
	return e.String()
}
