package ebinterface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/ebinvoice/internal/ebinterface"
)

func TestBiller_MinimalFragment(t *testing.T) {
	b := ebinterface.Biller{VATIdentificationNumber: "ATU51507409"}
	assert.Equal(t,
		"<Biller><VATIdentificationNumber>ATU51507409</VATIdentificationNumber></Biller>",
		b.Fragment())
}

func TestBiller_FullFragment(t *testing.T) {
	b := ebinterface.Biller{
		VATIdentificationNumber: "ATU51507409",
		FurtherIdentifications: []ebinterface.FurtherIdentification{
			{ID: "0012345", Type: ebinterface.FurtherIdentificationDVR},
		},
		Address: &ebinterface.Address{
			Name:        "Schrauben Mustermann",
			Street:      "Lassallenstraße 5",
			Town:        "Wien",
			ZIP:         "1020",
			Country:     "Österreich",
			CountryCode: "AT",
			Phone:       []string{"+43 / 1 / 78 56 789"},
			Email:       []string{"schrauben@mustermann.at"},
		},
	}

	assert.Equal(t,
		`<Biller><VATIdentificationNumber>ATU51507409</VATIdentificationNumber><FurtherIdentification IdentificationType="DVR">0012345</FurtherIdentification><Address><Name>Schrauben Mustermann</Name><Street>Lassallenstraße 5</Street><Town>Wien</Town><ZIP>1020</ZIP><Country CountryCode="AT">Österreich</Country><Phone>+43 / 1 / 78 56 789</Phone><Email>schrauben@mustermann.at</Email></Address></Biller>`,
		b.Fragment())
}

func TestInvoiceRecipient_FullFragment(t *testing.T) {
	r := ebinterface.InvoiceRecipient{
		VATIdentificationNumber: "ATU18708634",
		OrderReference:          &ebinterface.OrderReference{OrderID: "test"},
		Address: &ebinterface.Address{
			Name:        "Mustermann GmbH",
			Street:      "Hauptstraße 10",
			Town:        "Graz",
			ZIP:         "8010",
			Country:     "Österreich",
			CountryCode: "AT",
		},
		Contact: &ebinterface.Contact{
			Name:  "Max Mustermann",
			Email: []string{"schrauben@mustermann.at"},
		},
	}

	assert.Equal(t,
		`<InvoiceRecipient><VATIdentificationNumber>ATU18708634</VATIdentificationNumber><OrderReference><OrderID>test</OrderID></OrderReference><Address><Name>Mustermann GmbH</Name><Street>Hauptstraße 10</Street><Town>Graz</Town><ZIP>8010</ZIP><Country CountryCode="AT">Österreich</Country></Address><Contact><Name>Max Mustermann</Name><Email>schrauben@mustermann.at</Email></Contact></InvoiceRecipient>`,
		r.Fragment())
}

func TestAddress_StreetAlwaysRenders(t *testing.T) {
	a := ebinterface.Address{Name: "Mustermann GmbH", Town: "Graz", ZIP: "8010", Country: "Österreich"}
	assert.Equal(t,
		"<Address><Name>Mustermann GmbH</Name><Street></Street><Town>Graz</Town><ZIP>8010</ZIP><Country>Österreich</Country></Address>",
		a.Fragment())
}

func TestContact_SalutationOptional(t *testing.T) {
	c := ebinterface.Contact{Salutation: "Herr", Name: "Max Mustermann", Phone: []string{"+43 1 234"}}
	assert.Equal(t,
		"<Contact><Salutation>Herr</Salutation><Name>Max Mustermann</Name><Phone>+43 1 234</Phone></Contact>",
		c.Fragment())
}

func TestOrderReference_OptionalFields(t *testing.T) {
	o := ebinterface.OrderReference{OrderID: "PO-1", ReferenceDate: "2020-01-01", Description: "Jahresbestellung"}
	assert.Equal(t,
		"<OrderReference><OrderID>PO-1</OrderID><ReferenceDate>2020-01-01</ReferenceDate><Description>Jahresbestellung</Description></OrderReference>",
		o.Fragment())
}

func TestParty_EscapesContent(t *testing.T) {
	b := ebinterface.Biller{VATIdentificationNumber: "ATU<&>\"'"}
	assert.Equal(t,
		"<Biller><VATIdentificationNumber>ATU&lt;&amp;&gt;&quot;&apos;</VATIdentificationNumber></Biller>",
		b.Fragment())
}

func TestParseFurtherIdentificationType(t *testing.T) {
	typ, err := ebinterface.ParseFurtherIdentificationType("BBG_GZ")
	assert.NoError(t, err)
	assert.Equal(t, ebinterface.FurtherIdentificationBBGGZ, typ)

	_, err = ebinterface.ParseFurtherIdentificationType("XXX")
	assert.Error(t, err)
}
