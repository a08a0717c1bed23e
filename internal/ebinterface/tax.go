package ebinterface

import (
	"sort"

	dec "github.com/shopspring/decimal"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/xmltree"
)

// TaxCategory is the government tax-category code applied to a line item.
// The declaration order is the canonical sort order within a tax rate and
// must not be rearranged.
type TaxCategory int

const (
	TaxCategoryS TaxCategory = iota
	TaxCategoryAA
	TaxCategoryO
	TaxCategoryD
	TaxCategoryE
	TaxCategoryF
	TaxCategoryG
	TaxCategoryI
	TaxCategoryJ
	TaxCategoryK
	TaxCategoryAE
	TaxCategoryZ
)

// Code returns the schema code for the category.
func (c TaxCategory) Code() string {
	switch c {
	case TaxCategoryS:
		return "S"
	case TaxCategoryAA:
		return "AA"
	case TaxCategoryO:
		return "O"
	case TaxCategoryD:
		return "D"
	case TaxCategoryE:
		return "E"
	case TaxCategoryF:
		return "F"
	case TaxCategoryG:
		return "G"
	case TaxCategoryI:
		return "I"
	case TaxCategoryJ:
		return "J"
	case TaxCategoryK:
		return "K"
	case TaxCategoryAE:
		return "AE"
	case TaxCategoryZ:
		return "Z"
	}
	return ""
}

// ParseTaxCategory maps a schema code back to its TaxCategory.
func ParseTaxCategory(code string) (TaxCategory, error) {
	for c := TaxCategoryS; c <= TaxCategoryZ; c++ {
		if c.Code() == code {
			return c, nil
		}
	}
	return 0, NewValidationError("TaxCategory", code, "enum", "unknown tax category code")
}

// TaxItem is the (rate, category) pair applied to a line item.
type TaxItem struct {
	TaxPercent  dec.Decimal
	TaxCategory TaxCategory
}

// AsXML renders the tax breakdown for the given taxable amount. The taxable
// amount is rounded to two digits for display only; the tax amount is
// computed from the unrounded value. The rate is rendered in its minimal
// decimal form, without a fixed digit count.
func (t TaxItem) AsXML(taxableAmount dec.Decimal) *xmltree.Element {
	taxAmount := decimal.Percent(taxableAmount, t.TaxPercent)

	return xmltree.New("TaxItem").
		WithTextElement("TaxableAmount", taxableAmount.StringFixed(2)).
		WithElement(xmltree.New("TaxPercent").
			WithAttr("TaxCategoryCode", t.TaxCategory.Code()).
			WithText(t.TaxPercent.String())).
		WithTextElement("TaxAmount", taxAmount.StringFixed(2))
}

// taxGroupKey identifies one aggregation bucket. The rate is keyed by its
// canonical string so that decimals equal in value (20 vs 20.0) land in the
// same bucket.
type taxGroupKey struct {
	rate     string
	category TaxCategory
}

type taxGroup struct {
	item TaxItem
	sum  dec.Decimal
}

// aggregateTax groups line items by (rate, category), sums their line item
// amounts per group and renders one TaxItem per group inside a Tax element.
// Groups are ordered ascending by rate, then by category declaration order,
// so identical inputs always serialize identically regardless of the order
// the items were added in.
func aggregateTax(items []LineItem) *xmltree.Element {
	groups := make(map[taxGroupKey]*taxGroup)
	for i := range items {
		item := &items[i]
		k := taxGroupKey{
			rate:     item.TaxItem.TaxPercent.String(),
			category: item.TaxItem.TaxCategory,
		}
		g, ok := groups[k]
		if !ok {
			g = &taxGroup{item: item.TaxItem}
			groups[k] = g
		}
		g.sum = g.sum.Add(item.LineItemAmount())
	}

	sorted := make([]*taxGroup, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	sort.Slice(sorted, func(i, j int) bool {
		cmp := sorted[i].item.TaxPercent.Cmp(sorted[j].item.TaxPercent)
		if cmp != 0 {
			return cmp < 0
		}
		return sorted[i].item.TaxCategory < sorted[j].item.TaxCategory
	})

	tax := xmltree.New("Tax")
	for _, g := range sorted {
		tax.WithElement(g.item.AsXML(g.sum))
	}
	return tax
}
