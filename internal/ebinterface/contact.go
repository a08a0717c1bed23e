package ebinterface

import "github.com/rezonia/ebinvoice/internal/xmltree"

// Contact is a contact-person fragment used by biller and recipient.
type Contact struct {
	Salutation string
	Name       string
	Phone      []string
	Email      []string
}

// Fragment renders the Contact as a pre-escaped XML fragment.
func (c *Contact) Fragment() string {
	e := xmltree.New("Contact")
	if c.Salutation != "" {
		e.WithTextElement("Salutation", c.Salutation)
	}
	e.WithTextElement("Name", c.Name)
	for _, p := range c.Phone {
		e.WithTextElement("Phone", p)
	}
	for _, m := range c.Email {
		e.WithTextElement("Email", m)
	}
	return e.String()
}
