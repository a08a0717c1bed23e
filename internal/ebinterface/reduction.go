package ebinterface

import (
	dec "github.com/shopspring/decimal"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/xmltree"
)

// ReductionAndSurchargeValue is the value of a single adjustment: a
// percentage of the base amount, a fixed amount, or both. When both are
// given, only the amount enters the sum; the percentage is informational.
type ReductionAndSurchargeValue struct {
	percentage *dec.Decimal
	amount     *dec.Decimal
}

// PercentageValue specifies an adjustment as a percentage of the base amount.
func PercentageValue(percentage dec.Decimal) ReductionAndSurchargeValue {
	return ReductionAndSurchargeValue{percentage: &percentage}
}

// AmountValue specifies an adjustment as a fixed amount.
func AmountValue(amount dec.Decimal) ReductionAndSurchargeValue {
	return ReductionAndSurchargeValue{amount: &amount}
}

// PercentageAndAmountValue specifies both. The amount is authoritative.
func PercentageAndAmountValue(percentage, amount dec.Decimal) ReductionAndSurchargeValue {
	return ReductionAndSurchargeValue{percentage: &percentage, amount: &amount}
}

// contribution is the signed amount the adjustment adds to the sum.
// Percentage contributions are rounded to two digits at this point.
func (v ReductionAndSurchargeValue) contribution(baseAmount dec.Decimal) dec.Decimal {
	if v.amount != nil {
		return *v.amount
	}
	if v.percentage != nil {
		return decimal.Round(decimal.Percent(baseAmount, *v.percentage), 2)
	}
	return decimal.Zero
}

// bodyElements renders BaseAmount, then Percentage and/or Amount, then the
// optional Comment, in schema order.
func (v ReductionAndSurchargeValue) bodyElements(baseAmount dec.Decimal, comment string) []*xmltree.Element {
	es := []*xmltree.Element{
		xmltree.New("BaseAmount").WithText(baseAmount.StringFixed(2)),
	}
	if v.percentage != nil {
		es = append(es, xmltree.New("Percentage").WithText(v.percentage.StringFixed(2)))
	}
	if v.amount != nil {
		es = append(es, xmltree.New("Amount").WithText(v.amount.StringFixed(2)))
	}
	if comment != "" {
		es = append(es, xmltree.New("Comment").WithText(comment))
	}
	return es
}

// ReductionListLineItem is one reduction applied to a line item.
type ReductionListLineItem struct {
	baseAmount dec.Decimal
	value      ReductionAndSurchargeValue
	comment    string
}

// NewReductionListLineItem creates a reduction over the given base amount.
func NewReductionListLineItem(baseAmount dec.Decimal, value ReductionAndSurchargeValue) ReductionListLineItem {
	return ReductionListLineItem{baseAmount: baseAmount, value: value}
}

// WithComment attaches a comment.
func (r ReductionListLineItem) WithComment(comment string) ReductionListLineItem {
	r.comment = comment
	return r
}

func (r ReductionListLineItem) sum() dec.Decimal {
	return r.value.contribution(r.baseAmount)
}

// AsXML renders the reduction.
func (r ReductionListLineItem) AsXML() *xmltree.Element {
	e := xmltree.New("ReductionListLineItem")
	for _, b := range r.value.bodyElements(r.baseAmount, r.comment) {
		e.WithElement(b)
	}
	return e
}

// SurchargeListLineItem is one surcharge applied to a line item.
type SurchargeListLineItem struct {
	baseAmount dec.Decimal
	value      ReductionAndSurchargeValue
	comment    string
}

// NewSurchargeListLineItem creates a surcharge over the given base amount.
func NewSurchargeListLineItem(baseAmount dec.Decimal, value ReductionAndSurchargeValue) SurchargeListLineItem {
	return SurchargeListLineItem{baseAmount: baseAmount, value: value}
}

// WithComment attaches a comment.
func (s SurchargeListLineItem) WithComment(comment string) SurchargeListLineItem {
	s.comment = comment
	return s
}

func (s SurchargeListLineItem) sum() dec.Decimal {
	return s.value.contribution(s.baseAmount)
}

// AsXML renders the surcharge.
func (s SurchargeListLineItem) AsXML() *xmltree.Element {
	e := xmltree.New("SurchargeListLineItem")
	for _, b := range s.value.bodyElements(s.baseAmount, s.comment) {
		e.WithElement(b)
	}
	return e
}

// ReductionAndSurchargeListLineItemDetails collects the reductions and
// surcharges of a single line item.
type ReductionAndSurchargeListLineItemDetails struct {
	reductions []ReductionListLineItem
	surcharges []SurchargeListLineItem
}

// WithReduction appends a reduction.
func (d ReductionAndSurchargeListLineItemDetails) WithReduction(r ReductionListLineItem) ReductionAndSurchargeListLineItemDetails {
	d.reductions = append(d.reductions, r)
	return d
}

// WithSurcharge appends a surcharge.
func (d ReductionAndSurchargeListLineItemDetails) WithSurcharge(s SurchargeListLineItem) ReductionAndSurchargeListLineItemDetails {
	d.surcharges = append(d.surcharges, s)
	return d
}

// Sum is the signed net adjustment: surcharges minus reductions. A positive
// result increases the line item amount.
func (d ReductionAndSurchargeListLineItemDetails) Sum() dec.Decimal {
	sum := decimal.Zero
	for _, s := range d.surcharges {
		sum = sum.Add(s.sum())
	}
	for _, r := range d.reductions {
		sum = sum.Sub(r.sum())
	}
	return sum
}

func (d ReductionAndSurchargeListLineItemDetails) empty() bool {
	return len(d.reductions) == 0 && len(d.surcharges) == 0
}

// AsXML renders the container, reductions before surcharges.
func (d ReductionAndSurchargeListLineItemDetails) AsXML() *xmltree.Element {
	e := xmltree.New("ReductionAndSurchargeListLineItemDetails")
	for _, r := range d.reductions {
		e.WithElement(r.AsXML())
	}
	for _, s := range d.surcharges {
		e.WithElement(s.AsXML())
	}
	return e
}
