package ebinterface

// DocumentType classifies the business document being generated.
// DocumentTypeInvoice is the zero value, so an unset field produces a plain
// invoice.
type DocumentType int

const (
	DocumentTypeInvoice DocumentType = iota
	DocumentTypeCreditMemo
	DocumentTypeFinalSettlement
	DocumentTypeInvoiceForAdvancePayment
	DocumentTypeInvoiceForPartialDelivery
	DocumentTypeSelfBilling
	DocumentTypeSubsequentCredit
	DocumentTypeSubsequentDebit
)

// Code returns the schema code for the document type.
func (t DocumentType) Code() string {
	switch t {
	case DocumentTypeInvoice:
		return "Invoice"
	case DocumentTypeCreditMemo:
		return "CreditMemo"
	case DocumentTypeFinalSettlement:
		return "FinalSettlement"
	case DocumentTypeInvoiceForAdvancePayment:
		return "InvoiceForAdvancePayment"
	case DocumentTypeInvoiceForPartialDelivery:
		return "InvoiceForPartialDelivery"
	case DocumentTypeSelfBilling:
		return "SelfBilling"
	case DocumentTypeSubsequentCredit:
		return "SubsequentCredit"
	case DocumentTypeSubsequentDebit:
		return "SubsequentDebit"
	}
	return ""
}

// ParseDocumentType maps a schema code back to its DocumentType.
func ParseDocumentType(code string) (DocumentType, error) {
	for t := DocumentTypeInvoice; t <= DocumentTypeSubsequentDebit; t++ {
		if t.Code() == code {
			return t, nil
		}
	}
	return 0, NewValidationError("DocumentType", code, "enum", "unknown document type")
}
