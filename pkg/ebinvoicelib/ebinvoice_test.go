package ebinvoicelib_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/ebinvoice/pkg/ebinvoicelib"
)

func TestGenerate(t *testing.T) {
	inv := &ebinvoicelib.Invoice{
		GeneratingSystem: "billing-app",
		InvoiceCurrency:  "EUR",
		InvoiceNumber:    "2026-0001",
		InvoiceDate:      "2026-08-31",
		Biller:           ebinvoicelib.Biller{VATIdentificationNumber: "ATU51507409"},
		InvoiceRecipient: ebinvoicelib.InvoiceRecipient{VATIdentificationNumber: "ATU18708634"},
		Details: ebinvoicelib.Details{Items: []ebinvoicelib.LineItem{
			{
				Description: []string{"Beratung"},
				Quantity:    decimal.NewFromInt(2),
				Unit:        "HUR",
				UnitPrice:   decimal.NewFromInt(120),
				TaxItem: ebinvoicelib.TaxItem{
					TaxPercent:  decimal.NewFromInt(20),
					TaxCategory: ebinvoicelib.TaxCategoryS,
				},
			},
		}},
	}

	xml, err := ebinvoicelib.Generate(inv)
	require.NoError(t, err)

	assert.Contains(t, xml, `xmlns="`+ebinvoicelib.Namespace+`"`)
	assert.Contains(t, xml, "<LineItemAmount>240.00</LineItemAmount>")
	assert.Contains(t, xml, "<TotalGrossAmount>288.00</TotalGrossAmount>")
}

func TestGenerate_PaymentMethodAndAdjustments(t *testing.T) {
	// The whole document, payment method and reduction included, must be
	// constructible through this package alone.
	adjustments := ebinvoicelib.ReductionAndSurchargeListLineItemDetails{}.
		WithReduction(ebinvoicelib.NewReductionListLineItem(
			decimal.NewFromInt(240),
			ebinvoicelib.PercentageValue(decimal.NewFromInt(10)),
		).WithComment("Treuerabatt")).
		WithSurcharge(ebinvoicelib.NewSurchargeListLineItem(
			decimal.NewFromInt(240),
			ebinvoicelib.AmountValue(decimal.NewFromInt(5)),
		))

	inv := &ebinvoicelib.Invoice{
		GeneratingSystem: "billing-app",
		DocumentType:     ebinvoicelib.DocumentTypeFinalSettlement,
		InvoiceCurrency:  "EUR",
		InvoiceNumber:    "2026-0002",
		InvoiceDate:      "2026-08-31",
		Biller: ebinvoicelib.Biller{
			VATIdentificationNumber: "ATU51507409",
			FurtherIdentifications: []ebinvoicelib.FurtherIdentification{
				{ID: "0012345", Type: ebinvoicelib.FurtherIdentificationDVR},
			},
		},
		InvoiceRecipient: ebinvoicelib.InvoiceRecipient{VATIdentificationNumber: "ATU18708634"},
		Details: ebinvoicelib.Details{Items: []ebinvoicelib.LineItem{
			{
				Description:           []string{"Beratung"},
				Quantity:              decimal.NewFromInt(2),
				Unit:                  "HUR",
				UnitPrice:             decimal.NewFromInt(120),
				ReductionAndSurcharge: &adjustments,
				TaxItem: ebinvoicelib.TaxItem{
					TaxPercent:  decimal.NewFromInt(20),
					TaxCategory: ebinvoicelib.TaxCategoryS,
				},
			},
		}},
		PaymentMethod: ebinvoicelib.SEPADirectDebitPayment(ebinvoicelib.SEPADirectDebit{
			BIC:  "BKAUATWW",
			IBAN: "AT491200011111111111",
		}).WithComment("Einzug zum 15."),
	}

	xml, err := ebinvoicelib.Generate(inv)
	require.NoError(t, err)

	// 240 - 24 + 5 = 221
	assert.Contains(t, xml, `DocumentType="FinalSettlement"`)
	assert.Contains(t, xml, "<ReductionListLineItem><BaseAmount>240.00</BaseAmount><Percentage>10.00</Percentage><Comment>Treuerabatt</Comment></ReductionListLineItem>")
	assert.Contains(t, xml, "<SurchargeListLineItem><BaseAmount>240.00</BaseAmount><Amount>5.00</Amount></SurchargeListLineItem>")
	assert.Contains(t, xml, "<LineItemAmount>221.00</LineItemAmount>")
	assert.Contains(t, xml, "<PaymentMethod><Comment>Einzug zum 15.</Comment><SEPADirectDebit><Type>B2C</Type><BIC>BKAUATWW</BIC><IBAN>AT491200011111111111</IBAN></SEPADirectDebit></PaymentMethod>")
}

func TestGenerate_PaymentValidationError(t *testing.T) {
	inv := &ebinvoicelib.Invoice{
		GeneratingSystem: "billing-app",
		InvoiceCurrency:  "EUR",
		InvoiceNumber:    "2026-0003",
		InvoiceDate:      "2026-08-31",
		Biller:           ebinvoicelib.Biller{VATIdentificationNumber: "ATU51507409"},
		InvoiceRecipient: ebinvoicelib.InvoiceRecipient{VATIdentificationNumber: "ATU18708634"},
		PaymentMethod: ebinvoicelib.PaymentCardPayment(ebinvoicelib.PaymentCard{
			PrimaryAccountNumber: "1234567890123456",
		}),
	}

	xml, err := ebinvoicelib.Generate(inv)
	assert.Empty(t, xml)

	var verr *ebinvoicelib.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "PrimaryAccountNumber", verr.Field)
}

func TestParseHelpers(t *testing.T) {
	c, err := ebinvoicelib.ParseTaxCategory("Z")
	require.NoError(t, err)
	assert.Equal(t, ebinvoicelib.TaxCategoryZ, c)

	dt, err := ebinvoicelib.ParseDocumentType("SubsequentDebit")
	require.NoError(t, err)
	assert.Equal(t, ebinvoicelib.DocumentTypeSubsequentDebit, dt)

	ft, err := ebinvoicelib.ParseFurtherIdentificationType("FN")
	require.NoError(t, err)
	assert.Equal(t, ebinvoicelib.FurtherIdentificationFN, ft)
}
