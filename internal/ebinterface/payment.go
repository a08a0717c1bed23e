package ebinterface

import (
	"regexp"
	"strconv"

	"github.com/rezonia/ebinvoice/internal/xmltree"
)

// Validation patterns mandated by the schema. Compiled once at package
// initialization and read-only afterwards.
var (
	bicPattern  = regexp.MustCompile(`^[0-9A-Za-z]{8}([0-9A-Za-z]{3})?$`)
	datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	panPattern  = regexp.MustCompile(`^[0-9]{0,6}\*[0-9]{0,4}$`)
)

// paymentMethodVariant is implemented by the closed set of payment method
// kinds. Each variant validates and renders its own fields.
type paymentMethodVariant interface {
	asXML() (*xmltree.Element, error)
}

// PaymentMethod wraps one payment method variant plus an optional comment.
type PaymentMethod struct {
	comment string
	variant paymentMethodVariant
}

// WithComment attaches a comment, rendered before the variant element.
func (m *PaymentMethod) WithComment(comment string) *PaymentMethod {
	m.comment = comment
	return m
}

// AsXML renders the PaymentMethod element, or fails with the variant's
// validation error.
func (m *PaymentMethod) AsXML() (*xmltree.Element, error) {
	e := xmltree.New("PaymentMethod")
	if m.comment != "" {
		e.WithTextElement("Comment", m.comment)
	}

	variant := m.variant
	if variant == nil {
		variant = noPayment{}
	}
	ve, err := variant.asXML()
	if err != nil {
		return nil, err
	}
	return e.WithElement(ve), nil
}

// NoPayment declares that no payment is expected.
func NoPayment() *PaymentMethod {
	return &PaymentMethod{variant: noPayment{}}
}

// OtherPayment declares a payment method outside the schema's known kinds.
func OtherPayment() *PaymentMethod {
	return &PaymentMethod{variant: otherPayment{}}
}

// SEPADirectDebitPayment wraps a SEPA direct debit.
func SEPADirectDebitPayment(d SEPADirectDebit) *PaymentMethod {
	return &PaymentMethod{variant: d}
}

// UniversalBankTransactionPayment wraps a bank transfer.
func UniversalBankTransactionPayment(t UniversalBankTransaction) *PaymentMethod {
	return &PaymentMethod{variant: t}
}

// BeneficiaryAccountPayment wraps a bare beneficiary account.
func BeneficiaryAccountPayment(a BeneficiaryAccount) *PaymentMethod {
	return &PaymentMethod{variant: a}
}

// PaymentCardPayment wraps a payment card.
func PaymentCardPayment(c PaymentCard) *PaymentMethod {
	return &PaymentMethod{variant: c}
}

type noPayment struct{}

func (noPayment) asXML() (*xmltree.Element, error) {
	return xmltree.New("NoPayment"), nil
}

type otherPayment struct{}

func (otherPayment) asXML() (*xmltree.Element, error) {
	return xmltree.New("OtherPayment"), nil
}

// SEPADirectDebit carries the fields of a SEPA direct debit mandate. Empty
// fields are omitted from the output; Type defaults to B2C.
type SEPADirectDebit struct {
	Type                string
	BIC                 string
	IBAN                string
	BankAccountOwner    string
	CreditorID          string
	MandateReference    string
	DebitCollectionDate string
}

func (d SEPADirectDebit) asXML() (*xmltree.Element, error) {
	e := xmltree.New("SEPADirectDebit")

	directDebitType := d.Type
	if directDebitType == "" {
		directDebitType = "B2C"
	}
	e.WithTextElement("Type", directDebitType)

	if d.BIC != "" {
		if !bicPattern.MatchString(d.BIC) {
			return nil, NewValidationError("BIC", d.BIC, bicPattern.String(), "malformed BIC")
		}
		e.WithTextElement("BIC", d.BIC)
	}
	if d.IBAN != "" {
		if len(d.IBAN) > 34 {
			return nil, NewValidationError("IBAN", d.IBAN, "maxLength=34", "IBAN is too long")
		}
		e.WithTextElement("IBAN", d.IBAN)
	}
	if d.BankAccountOwner != "" {
		if len(d.BankAccountOwner) > 70 {
			return nil, NewValidationError("BankAccountOwner", d.BankAccountOwner, "maxLength=70", "bank account owner is too long")
		}
		e.WithTextElement("BankAccountOwner", d.BankAccountOwner)
	}
	if d.CreditorID != "" {
		if len(d.CreditorID) > 35 {
			return nil, NewValidationError("CreditorID", d.CreditorID, "maxLength=35", "creditor ID is too long")
		}
		e.WithTextElement("CreditorID", d.CreditorID)
	}
	if d.MandateReference != "" {
		if len(d.MandateReference) > 35 {
			return nil, NewValidationError("MandateReference", d.MandateReference, "maxLength=35", "mandate reference is too long")
		}
		e.WithTextElement("MandateReference", d.MandateReference)
	}
	if d.DebitCollectionDate != "" {
		if !datePattern.MatchString(d.DebitCollectionDate) {
			return nil, NewValidationError("DebitCollectionDate", d.DebitCollectionDate, datePattern.String(), "malformed collection date")
		}
		e.WithTextElement("DebitCollectionDate", d.DebitCollectionDate)
	}

	return e, nil
}

// BankCode identifies a bank by national code; CodeType is the ISO 3166-1
// country code of the numbering scheme.
type BankCode struct {
	Code     int64
	CodeType string
}

// BeneficiaryAccount describes the account money should be transferred to.
type BeneficiaryAccount struct {
	BankName         string
	BankCode         *BankCode
	BIC              string
	BankAccountNr    string
	IBAN             string
	BankAccountOwner string
}

func (a BeneficiaryAccount) asXML() (*xmltree.Element, error) {
	e := xmltree.New("BeneficiaryAccount")

	if a.BankName != "" {
		if len(a.BankName) > 255 {
			return nil, NewValidationError("BankName", a.BankName, "maxLength=255", "bank name is too long")
		}
		e.WithTextElement("BankName", a.BankName)
	}
	if a.BankCode != nil {
		if len(a.BankCode.CodeType) != 2 {
			return nil, NewValidationError("BankCodeType", a.BankCode.CodeType, "length=2", "bank code type must be a 2-character country code")
		}
		e.WithElement(xmltree.New("BankCode").
			WithText(strconv.FormatInt(a.BankCode.Code, 10)).
			WithAttr("BankCodeType", a.BankCode.CodeType))
	}
	if a.BIC != "" {
		if !bicPattern.MatchString(a.BIC) {
			return nil, NewValidationError("BIC", a.BIC, bicPattern.String(), "malformed BIC")
		}
		e.WithTextElement("BIC", a.BIC)
	}
	if a.BankAccountNr != "" {
		e.WithTextElement("BankAccountNr", a.BankAccountNr)
	}
	if a.IBAN != "" {
		if len(a.IBAN) > 34 {
			return nil, NewValidationError("IBAN", a.IBAN, "maxLength=34", "IBAN is too long")
		}
		e.WithTextElement("IBAN", a.IBAN)
	}
	if a.BankAccountOwner != "" {
		if len(a.BankAccountOwner) > 70 {
			return nil, NewValidationError("BankAccountOwner", a.BankAccountOwner, "maxLength=70", "bank account owner is too long")
		}
		e.WithTextElement("BankAccountOwner", a.BankAccountOwner)
	}

	return e, nil
}

// UniversalBankTransaction describes an ordinary bank transfer with zero or
// more beneficiary accounts.
type UniversalBankTransaction struct {
	ConsolidatorPayable      bool
	BeneficiaryAccounts      []BeneficiaryAccount
	PaymentReference         string
	PaymentReferenceChecksum string
}

func (t UniversalBankTransaction) asXML() (*xmltree.Element, error) {
	e := xmltree.New("UniversalBankTransaction").
		WithAttr("ConsolidatorPayable", strconv.FormatBool(t.ConsolidatorPayable))

	for _, account := range t.BeneficiaryAccounts {
		ae, err := account.asXML()
		if err != nil {
			return nil, err
		}
		e.WithElement(ae)
	}

	if t.PaymentReference != "" {
		if len(t.PaymentReference) > 35 {
			return nil, NewValidationError("PaymentReference", t.PaymentReference, "maxLength=35", "payment reference is too long")
		}
		ref := xmltree.New("PaymentReference").WithText(t.PaymentReference)
		if t.PaymentReferenceChecksum != "" {
			ref.WithAttr("CheckSum", t.PaymentReferenceChecksum)
		}
		e.WithElement(ref)
	}

	return e, nil
}

// PaymentCard identifies a card payment. PrimaryAccountNumber must be
// masked: at most the first six and last four digits separated by "*".
type PaymentCard struct {
	PrimaryAccountNumber string
	CardHolderName       string
}

func (c PaymentCard) asXML() (*xmltree.Element, error) {
	if !panPattern.MatchString(c.PrimaryAccountNumber) {
		return nil, NewValidationError("PrimaryAccountNumber", c.PrimaryAccountNumber, panPattern.String(),
			"provide at most the first 6 and last 4 digits, separated with a \"*\"")
	}

	e := xmltree.New("PaymentCard").
		WithTextElement("PrimaryAccountNumber", c.PrimaryAccountNumber)
	if c.CardHolderName != "" {
		e.WithTextElement("CardHolderName", c.CardHolderName)
	}
	return e, nil
}
