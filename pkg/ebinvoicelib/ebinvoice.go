// Package ebinvoicelib provides the public API for building ebInterface 6.1
// invoice documents.
//
// Assemble an Invoice value, then serialize it:
//
//	inv := &ebinvoicelib.Invoice{
//	    GeneratingSystem: "my-billing-app",
//	    InvoiceCurrency:  "EUR",
//	    InvoiceNumber:    "2026-0001",
//	    InvoiceDate:      "2026-08-31",
//	    ...
//	}
//	xml, err := ebinvoicelib.Generate(inv)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(xml)
package ebinvoicelib

import "github.com/rezonia/ebinvoice/internal/ebinterface"

// Re-export core types for public API
type (
	Invoice                   = ebinterface.Invoice
	Details                   = ebinterface.Details
	LineItem                  = ebinterface.LineItem
	TaxItem                   = ebinterface.TaxItem
	TaxCategory               = ebinterface.TaxCategory
	DocumentType              = ebinterface.DocumentType
	Biller                    = ebinterface.Biller
	InvoiceRecipient          = ebinterface.InvoiceRecipient
	Address                   = ebinterface.Address
	Contact                   = ebinterface.Contact
	OrderReference            = ebinterface.OrderReference
	FurtherIdentification     = ebinterface.FurtherIdentification
	FurtherIdentificationType = ebinterface.FurtherIdentificationType
	ValidationError           = ebinterface.ValidationError
)

// Re-export adjustment types and constructors
type (
	ReductionAndSurchargeListLineItemDetails = ebinterface.ReductionAndSurchargeListLineItemDetails
	ReductionListLineItem                    = ebinterface.ReductionListLineItem
	SurchargeListLineItem                    = ebinterface.SurchargeListLineItem
	ReductionAndSurchargeValue               = ebinterface.ReductionAndSurchargeValue
)

var (
	NewReductionListLineItem = ebinterface.NewReductionListLineItem
	NewSurchargeListLineItem = ebinterface.NewSurchargeListLineItem
	PercentageValue          = ebinterface.PercentageValue
	AmountValue              = ebinterface.AmountValue
	PercentageAndAmountValue = ebinterface.PercentageAndAmountValue
)

// Re-export payment method types and constructors
type (
	PaymentMethod            = ebinterface.PaymentMethod
	SEPADirectDebit          = ebinterface.SEPADirectDebit
	UniversalBankTransaction = ebinterface.UniversalBankTransaction
	BeneficiaryAccount       = ebinterface.BeneficiaryAccount
	BankCode                 = ebinterface.BankCode
	PaymentCard              = ebinterface.PaymentCard
)

var (
	NoPayment                       = ebinterface.NoPayment
	OtherPayment                    = ebinterface.OtherPayment
	SEPADirectDebitPayment          = ebinterface.SEPADirectDebitPayment
	UniversalBankTransactionPayment = ebinterface.UniversalBankTransactionPayment
	BeneficiaryAccountPayment       = ebinterface.BeneficiaryAccountPayment
	PaymentCardPayment              = ebinterface.PaymentCardPayment
)

// Re-export tax categories
const (
	TaxCategoryS  = ebinterface.TaxCategoryS
	TaxCategoryAA = ebinterface.TaxCategoryAA
	TaxCategoryO  = ebinterface.TaxCategoryO
	TaxCategoryD  = ebinterface.TaxCategoryD
	TaxCategoryE  = ebinterface.TaxCategoryE
	TaxCategoryF  = ebinterface.TaxCategoryF
	TaxCategoryG  = ebinterface.TaxCategoryG
	TaxCategoryI  = ebinterface.TaxCategoryI
	TaxCategoryJ  = ebinterface.TaxCategoryJ
	TaxCategoryK  = ebinterface.TaxCategoryK
	TaxCategoryAE = ebinterface.TaxCategoryAE
	TaxCategoryZ  = ebinterface.TaxCategoryZ
)

// Re-export document types
const (
	DocumentTypeInvoice                   = ebinterface.DocumentTypeInvoice
	DocumentTypeCreditMemo                = ebinterface.DocumentTypeCreditMemo
	DocumentTypeFinalSettlement           = ebinterface.DocumentTypeFinalSettlement
	DocumentTypeInvoiceForAdvancePayment  = ebinterface.DocumentTypeInvoiceForAdvancePayment
	DocumentTypeInvoiceForPartialDelivery = ebinterface.DocumentTypeInvoiceForPartialDelivery
	DocumentTypeSelfBilling               = ebinterface.DocumentTypeSelfBilling
	DocumentTypeSubsequentCredit          = ebinterface.DocumentTypeSubsequentCredit
	DocumentTypeSubsequentDebit           = ebinterface.DocumentTypeSubsequentDebit
)

// Re-export further identification types
const (
	FurtherIdentificationARA          = ebinterface.FurtherIdentificationARA
	FurtherIdentificationBBGGZ        = ebinterface.FurtherIdentificationBBGGZ
	FurtherIdentificationConsolidator = ebinterface.FurtherIdentificationConsolidator
	FurtherIdentificationContract     = ebinterface.FurtherIdentificationContract
	FurtherIdentificationDVR          = ebinterface.FurtherIdentificationDVR
	FurtherIdentificationEORI         = ebinterface.FurtherIdentificationEORI
	FurtherIdentificationERSB         = ebinterface.FurtherIdentificationERSB
	FurtherIdentificationFN           = ebinterface.FurtherIdentificationFN
	FurtherIdentificationFR           = ebinterface.FurtherIdentificationFR
	FurtherIdentificationHG           = ebinterface.FurtherIdentificationHG
	FurtherIdentificationPayer        = ebinterface.FurtherIdentificationPayer
	FurtherIdentificationFASTNR       = ebinterface.FurtherIdentificationFASTNR
	FurtherIdentificationVID          = ebinterface.FurtherIdentificationVID
	FurtherIdentificationVN           = ebinterface.FurtherIdentificationVN
)

// Re-export enumeration parsers
var (
	ParseTaxCategory               = ebinterface.ParseTaxCategory
	ParseDocumentType              = ebinterface.ParseDocumentType
	ParseFurtherIdentificationType = ebinterface.ParseFurtherIdentificationType
)

// Namespace is the schema namespace of generated documents.
const Namespace = ebinterface.Namespace

// Generate serializes the invoice to an XML document string.
func Generate(inv *Invoice) (string, error) {
	return inv.XMLString()
}
