// Package input defines the JSON document the CLI and HTTP API accept and
// maps it onto the domain model. Amount fields unmarshal through
// shopspring/decimal, so numbers keep their exact decimal value.
package input

import (
	dec "github.com/shopspring/decimal"

	"github.com/rezonia/ebinvoice/internal/ebinterface"
)

// Invoice is the top-level JSON request.
type Invoice struct {
	GeneratingSystem string         `json:"generating_system"`
	DocumentType     string         `json:"document_type,omitempty"`
	InvoiceCurrency  string         `json:"invoice_currency"`
	DocumentTitle    string         `json:"document_title,omitempty"`
	Language         string         `json:"language,omitempty"`
	InvoiceNumber    string         `json:"invoice_number"`
	InvoiceDate      string         `json:"invoice_date"`
	Biller           Party          `json:"biller"`
	InvoiceRecipient Party          `json:"invoice_recipient"`
	LineItems        []LineItem     `json:"line_items"`
	PaymentMethod    *PaymentMethod `json:"payment_method,omitempty"`
}

// Party maps onto Biller or InvoiceRecipient.
type Party struct {
	VATIdentificationNumber string                  `json:"vat_identification_number"`
	FurtherIdentifications  []FurtherIdentification `json:"further_identifications,omitempty"`
	OrderReference          *OrderReference         `json:"order_reference,omitempty"`
	Address                 *Address                `json:"address,omitempty"`
	Contact                 *Contact                `json:"contact,omitempty"`
}

// FurtherIdentification is an additional party identifier.
type FurtherIdentification struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// OrderReference points at the settled order.
type OrderReference struct {
	OrderID       string `json:"order_id"`
	ReferenceDate string `json:"reference_date,omitempty"`
	Description   string `json:"description,omitempty"`
}

// Address is a postal address.
type Address struct {
	Name        string   `json:"name"`
	Street      string   `json:"street,omitempty"`
	Town        string   `json:"town"`
	ZIP         string   `json:"zip"`
	Country     string   `json:"country"`
	CountryCode string   `json:"country_code,omitempty"`
	Phone       []string `json:"phone,omitempty"`
	Email       []string `json:"email,omitempty"`
}

// Contact is a contact person.
type Contact struct {
	Salutation string   `json:"salutation,omitempty"`
	Name       string   `json:"name"`
	Phone      []string `json:"phone,omitempty"`
	Email      []string `json:"email,omitempty"`
}

// LineItem is one billable row.
type LineItem struct {
	PositionNumber int          `json:"position_number,omitempty"`
	Descriptions   []string     `json:"descriptions,omitempty"`
	Quantity       dec.Decimal  `json:"quantity"`
	Unit           string       `json:"unit"`
	UnitPrice      dec.Decimal  `json:"unit_price"`
	BaseQuantity   *dec.Decimal `json:"base_quantity,omitempty"`
	Reductions     []Adjustment `json:"reductions,omitempty"`
	Surcharges     []Adjustment `json:"surcharges,omitempty"`
	TaxPercent     dec.Decimal  `json:"tax_percent"`
	TaxCategory    string       `json:"tax_category"`
}

// Adjustment is a reduction or surcharge. Percentage, amount, or both must
// be set.
type Adjustment struct {
	BaseAmount dec.Decimal  `json:"base_amount"`
	Percentage *dec.Decimal `json:"percentage,omitempty"`
	Amount     *dec.Decimal `json:"amount,omitempty"`
	Comment    string       `json:"comment,omitempty"`
}

// Payment method type discriminators.
const (
	PaymentTypeNone                     = "no_payment"
	PaymentTypeSEPADirectDebit          = "sepa_direct_debit"
	PaymentTypeUniversalBankTransaction = "universal_bank_transaction"
	PaymentTypeBeneficiaryAccount       = "beneficiary_account"
	PaymentTypePaymentCard              = "payment_card"
	PaymentTypeOther                    = "other_payment"
)

// PaymentMethod selects one payment method variant via Type.
type PaymentMethod struct {
	Type                     string              `json:"type"`
	Comment                  string              `json:"comment,omitempty"`
	SEPADirectDebit          *SEPADirectDebit    `json:"sepa_direct_debit,omitempty"`
	UniversalBankTransaction *BankTransaction    `json:"universal_bank_transaction,omitempty"`
	BeneficiaryAccount       *BeneficiaryAccount `json:"beneficiary_account,omitempty"`
	PaymentCard              *PaymentCard        `json:"payment_card,omitempty"`
}

// SEPADirectDebit carries direct debit mandate fields.
type SEPADirectDebit struct {
	Type                string `json:"type,omitempty"`
	BIC                 string `json:"bic,omitempty"`
	IBAN                string `json:"iban,omitempty"`
	BankAccountOwner    string `json:"bank_account_owner,omitempty"`
	CreditorID          string `json:"creditor_id,omitempty"`
	MandateReference    string `json:"mandate_reference,omitempty"`
	DebitCollectionDate string `json:"debit_collection_date,omitempty"`
}

// BankTransaction carries bank transfer fields.
type BankTransaction struct {
	ConsolidatorPayable      bool                 `json:"consolidator_payable,omitempty"`
	BeneficiaryAccounts      []BeneficiaryAccount `json:"beneficiary_accounts,omitempty"`
	PaymentReference         string               `json:"payment_reference,omitempty"`
	PaymentReferenceChecksum string               `json:"payment_reference_checksum,omitempty"`
}

// BeneficiaryAccount identifies the account to transfer to.
type BeneficiaryAccount struct {
	BankName         string `json:"bank_name,omitempty"`
	BankCode         int64  `json:"bank_code,omitempty"`
	BankCodeType     string `json:"bank_code_type,omitempty"`
	BIC              string `json:"bic,omitempty"`
	BankAccountNr    string `json:"bank_account_nr,omitempty"`
	IBAN             string `json:"iban,omitempty"`
	BankAccountOwner string `json:"bank_account_owner,omitempty"`
}

// PaymentCard identifies a masked card payment.
type PaymentCard struct {
	PrimaryAccountNumber string `json:"primary_account_number"`
	CardHolderName       string `json:"card_holder_name,omitempty"`
}

// Build maps the request onto a domain invoice. It fails on unknown
// enumeration codes or an unknown payment method type; amount-level
// validation happens later, during serialization.
func (in *Invoice) Build() (*ebinterface.Invoice, error) {
	inv := &ebinterface.Invoice{
		GeneratingSystem: in.GeneratingSystem,
		InvoiceCurrency:  in.InvoiceCurrency,
		DocumentTitle:    in.DocumentTitle,
		Language:         in.Language,
		InvoiceNumber:    in.InvoiceNumber,
		InvoiceDate:      in.InvoiceDate,
	}

	if in.DocumentType != "" {
		dt, err := ebinterface.ParseDocumentType(in.DocumentType)
		if err != nil {
			return nil, err
		}
		inv.DocumentType = dt
	}

	biller, err := in.Biller.build()
	if err != nil {
		return nil, err
	}
	inv.Biller = ebinterface.Biller(*biller)

	recipient, err := in.InvoiceRecipient.build()
	if err != nil {
		return nil, err
	}
	inv.InvoiceRecipient = ebinterface.InvoiceRecipient(*recipient)

	for _, li := range in.LineItems {
		item, err := li.build()
		if err != nil {
			return nil, err
		}
		inv.Details.Items = append(inv.Details.Items, *item)
	}

	if in.PaymentMethod != nil {
		pm, err := in.PaymentMethod.build()
		if err != nil {
			return nil, err
		}
		inv.PaymentMethod = pm
	}

	return inv, nil
}

// party.build returns the biller-shaped struct; the recipient conversion
// reuses it since both carry identical fields.
func (p *Party) build() (*ebinterface.Biller, error) {
	b := &ebinterface.Biller{
		VATIdentificationNumber: p.VATIdentificationNumber,
	}
	for _, fi := range p.FurtherIdentifications {
		t, err := ebinterface.ParseFurtherIdentificationType(fi.Type)
		if err != nil {
			return nil, err
		}
		b.FurtherIdentifications = append(b.FurtherIdentifications, ebinterface.FurtherIdentification{
			ID:   fi.ID,
			Type: t,
		})
	}
	if p.OrderReference != nil {
		b.OrderReference = &ebinterface.OrderReference{
			OrderID:       p.OrderReference.OrderID,
			ReferenceDate: p.OrderReference.ReferenceDate,
			Description:   p.OrderReference.Description,
		}
	}
	if p.Address != nil {
		b.Address = &ebinterface.Address{
			Name:        p.Address.Name,
			Street:      p.Address.Street,
			Town:        p.Address.Town,
			ZIP:         p.Address.ZIP,
			Country:     p.Address.Country,
			CountryCode: p.Address.CountryCode,
			Phone:       p.Address.Phone,
			Email:       p.Address.Email,
		}
	}
	if p.Contact != nil {
		b.Contact = &ebinterface.Contact{
			Salutation: p.Contact.Salutation,
			Name:       p.Contact.Name,
			Phone:      p.Contact.Phone,
			Email:      p.Contact.Email,
		}
	}
	return b, nil
}

func (a Adjustment) value() ReductionAndSurchargeValue {
	return ReductionAndSurchargeValue{Percentage: a.Percentage, Amount: a.Amount}
}

// ReductionAndSurchargeValue is the internal pair used to pick the domain
// value constructor.
type ReductionAndSurchargeValue struct {
	Percentage *dec.Decimal
	Amount     *dec.Decimal
}

func (v ReductionAndSurchargeValue) domain() (ebinterface.ReductionAndSurchargeValue, error) {
	switch {
	case v.Percentage != nil && v.Amount != nil:
		return ebinterface.PercentageAndAmountValue(*v.Percentage, *v.Amount), nil
	case v.Percentage != nil:
		return ebinterface.PercentageValue(*v.Percentage), nil
	case v.Amount != nil:
		return ebinterface.AmountValue(*v.Amount), nil
	}
	return ebinterface.ReductionAndSurchargeValue{},
		ebinterface.NewValidationError("Adjustment", nil, "oneOf", "adjustment needs a percentage, an amount, or both")
}

func (li *LineItem) build() (*ebinterface.LineItem, error) {
	category, err := ebinterface.ParseTaxCategory(li.TaxCategory)
	if err != nil {
		return nil, err
	}

	item := &ebinterface.LineItem{
		PositionNumber: li.PositionNumber,
		Description:    li.Descriptions,
		Quantity:       li.Quantity,
		Unit:           li.Unit,
		UnitPrice:      li.UnitPrice,
		BaseQuantity:   li.BaseQuantity,
		TaxItem: ebinterface.TaxItem{
			TaxPercent:  li.TaxPercent,
			TaxCategory: category,
		},
	}

	if len(li.Reductions) > 0 || len(li.Surcharges) > 0 {
		var rs ebinterface.ReductionAndSurchargeListLineItemDetails
		for _, adj := range li.Reductions {
			v, err := adj.value().domain()
			if err != nil {
				return nil, err
			}
			rs = rs.WithReduction(
				ebinterface.NewReductionListLineItem(adj.BaseAmount, v).WithComment(adj.Comment))
		}
		for _, adj := range li.Surcharges {
			v, err := adj.value().domain()
			if err != nil {
				return nil, err
			}
			rs = rs.WithSurcharge(
				ebinterface.NewSurchargeListLineItem(adj.BaseAmount, v).WithComment(adj.Comment))
		}
		item.ReductionAndSurcharge = &rs
	}

	return item, nil
}

func (pm *PaymentMethod) build() (*ebinterface.PaymentMethod, error) {
	var method *ebinterface.PaymentMethod

	switch pm.Type {
	case PaymentTypeNone, "":
		method = ebinterface.NoPayment()
	case PaymentTypeOther:
		method = ebinterface.OtherPayment()
	case PaymentTypeSEPADirectDebit:
		var d SEPADirectDebit
		if pm.SEPADirectDebit != nil {
			d = *pm.SEPADirectDebit
		}
		method = ebinterface.SEPADirectDebitPayment(ebinterface.SEPADirectDebit{
			Type:                d.Type,
			BIC:                 d.BIC,
			IBAN:                d.IBAN,
			BankAccountOwner:    d.BankAccountOwner,
			CreditorID:          d.CreditorID,
			MandateReference:    d.MandateReference,
			DebitCollectionDate: d.DebitCollectionDate,
		})
	case PaymentTypeUniversalBankTransaction:
		var t BankTransaction
		if pm.UniversalBankTransaction != nil {
			t = *pm.UniversalBankTransaction
		}
		ubt := ebinterface.UniversalBankTransaction{
			ConsolidatorPayable:      t.ConsolidatorPayable,
			PaymentReference:         t.PaymentReference,
			PaymentReferenceChecksum: t.PaymentReferenceChecksum,
		}
		for _, acc := range t.BeneficiaryAccounts {
			ubt.BeneficiaryAccounts = append(ubt.BeneficiaryAccounts, acc.domain())
		}
		method = ebinterface.UniversalBankTransactionPayment(ubt)
	case PaymentTypeBeneficiaryAccount:
		var a BeneficiaryAccount
		if pm.BeneficiaryAccount != nil {
			a = *pm.BeneficiaryAccount
		}
		method = ebinterface.BeneficiaryAccountPayment(a.domain())
	case PaymentTypePaymentCard:
		var c PaymentCard
		if pm.PaymentCard != nil {
			c = *pm.PaymentCard
		}
		method = ebinterface.PaymentCardPayment(ebinterface.PaymentCard{
			PrimaryAccountNumber: c.PrimaryAccountNumber,
			CardHolderName:       c.CardHolderName,
		})
	default:
		return nil, ebinterface.NewValidationError("PaymentMethod.Type", pm.Type, "enum", "unknown payment method type")
	}

	if pm.Comment != "" {
		method.WithComment(pm.Comment)
	}
	return method, nil
}

func (a BeneficiaryAccount) domain() ebinterface.BeneficiaryAccount {
	account := ebinterface.BeneficiaryAccount{
		BankName:         a.BankName,
		BIC:              a.BIC,
		BankAccountNr:    a.BankAccountNr,
		IBAN:             a.IBAN,
		BankAccountOwner: a.BankAccountOwner,
	}
	if a.BankCode != 0 || a.BankCodeType != "" {
		account.BankCode = &ebinterface.BankCode{Code: a.BankCode, CodeType: a.BankCodeType}
	}
	return account
}
