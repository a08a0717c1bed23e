package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/ebinterface"
	"github.com/rezonia/ebinvoice/internal/inspect"
)

func generated(t *testing.T) []byte {
	t.Helper()
	inv := &ebinterface.Invoice{
		GeneratingSystem: "test",
		InvoiceCurrency:  "EUR",
		InvoiceNumber:    "993433000298",
		InvoiceDate:      "2020-01-01",
		Biller:           ebinterface.Biller{VATIdentificationNumber: "ATU51507409"},
		InvoiceRecipient: ebinterface.InvoiceRecipient{VATIdentificationNumber: "ATU18708634"},
		Details: ebinterface.Details{Items: []ebinterface.LineItem{
			{
				Description: []string{"Schraubenzieher"},
				Quantity:    decimal.FromInt(100),
				Unit:        "STK",
				UnitPrice:   decimal.MustFromString("10.20"),
				TaxItem: ebinterface.TaxItem{
					TaxPercent:  decimal.FromInt(20),
					TaxCategory: ebinterface.TaxCategoryS,
				},
			},
			{
				Description: []string{"Handbuch zur Schraube"},
				Quantity:    decimal.FromInt(1),
				Unit:        "STK",
				UnitPrice:   decimal.FromInt(5),
				TaxItem: ebinterface.TaxItem{
					TaxPercent:  decimal.FromInt(10),
					TaxCategory: ebinterface.TaxCategoryAA,
				},
			},
		}},
	}

	xml, err := inv.XMLString()
	require.NoError(t, err)
	return []byte(xml)
}

func TestInspect_SummarizesGeneratedDocument(t *testing.T) {
	s, err := inspect.Inspect(generated(t))
	require.NoError(t, err)

	assert.Equal(t, "Invoice", s.DocumentType)
	assert.Equal(t, "test", s.GeneratingSystem)
	assert.Equal(t, "993433000298", s.InvoiceNumber)
	assert.Equal(t, "2020-01-01", s.InvoiceDate)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, 2, s.LineItems)
	assert.Equal(t, 2, s.TaxGroups)
	assert.Equal(t, "1229.50", s.TotalGrossAmount)
	assert.Equal(t, "1229.50", s.PayableAmount)
}

func TestInspect_RejectsMalformedXML(t *testing.T) {
	_, err := inspect.Inspect([]byte("<Invoice"))
	assert.Error(t, err)
}

func TestInspect_RejectsWrongRoot(t *testing.T) {
	_, err := inspect.Inspect([]byte("<Order></Order>"))
	assert.ErrorContains(t, err, "unexpected root element")
}

func TestValidate_AcceptsGeneratedDocument(t *testing.T) {
	result := inspect.Validate(generated(t))
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_ReportsMalformedXML(t *testing.T) {
	result := inspect.Validate([]byte("not xml at all <"))
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}

func TestValidate_ReportsWrongNamespace(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?><Invoice xmlns="http://example.com/" GeneratingSystem="test" DocumentType="Invoice" InvoiceCurrency="EUR"><InvoiceNumber>1</InvoiceNumber><InvoiceDate>2020-01-01</InvoiceDate><Biller></Biller><InvoiceRecipient></InvoiceRecipient><Details></Details><Tax></Tax><TotalGrossAmount>0.00</TotalGrossAmount><PayableAmount>0.00</PayableAmount></Invoice>`
	result := inspect.Validate([]byte(doc))
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "namespace")
}

func TestValidate_ReportsMissingElementsAndAttributes(t *testing.T) {
	doc := `<Invoice xmlns="http://www.ebinterface.at/schema/6p1/"><InvoiceNumber>1</InvoiceNumber></Invoice>`
	result := inspect.Validate([]byte(doc))
	assert.False(t, result.Valid)

	assert.Contains(t, result.Errors, "missing required attribute GeneratingSystem")
	assert.Contains(t, result.Errors, "missing required element InvoiceDate")
	assert.Contains(t, result.Errors, "missing required element PayableAmount")
}
