package ebinterface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/ebinvoice/internal/decimal"
	"github.com/rezonia/ebinvoice/internal/ebinterface"
)

func TestReductionAndSurcharge_PercentageAndAmount(t *testing.T) {
	details := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithReduction(ebinterface.NewReductionListLineItem(
			decimal.FromInt(100),
			ebinterface.PercentageValue(decimal.FromInt(2)),
		).WithComment("reduction")).
		WithSurcharge(ebinterface.NewSurchargeListLineItem(
			decimal.FromInt(200),
			ebinterface.AmountValue(decimal.FromInt(3)),
		).WithComment("surcharge"))

	assert.Equal(t,
		"<ReductionAndSurchargeListLineItemDetails>"+
			"<ReductionListLineItem><BaseAmount>100.00</BaseAmount><Percentage>2.00</Percentage><Comment>reduction</Comment></ReductionListLineItem>"+
			"<SurchargeListLineItem><BaseAmount>200.00</BaseAmount><Amount>3.00</Amount><Comment>surcharge</Comment></SurchargeListLineItem>"+
			"</ReductionAndSurchargeListLineItemDetails>",
		details.AsXML().String())

	// 2% of 100 = 2.00 reduction, 3.00 surcharge: net +1.00.
	assert.Equal(t, "1", details.Sum().String())
}

func TestReductionAndSurcharge_AmountAndPercentage(t *testing.T) {
	details := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithReduction(ebinterface.NewReductionListLineItem(
			decimal.FromInt(100),
			ebinterface.AmountValue(decimal.FromInt(2)),
		).WithComment("reduction")).
		WithSurcharge(ebinterface.NewSurchargeListLineItem(
			decimal.FromInt(200),
			ebinterface.PercentageValue(decimal.FromInt(3)),
		).WithComment("surcharge"))

	assert.Equal(t,
		"<ReductionAndSurchargeListLineItemDetails>"+
			"<ReductionListLineItem><BaseAmount>100.00</BaseAmount><Amount>2.00</Amount><Comment>reduction</Comment></ReductionListLineItem>"+
			"<SurchargeListLineItem><BaseAmount>200.00</BaseAmount><Percentage>3.00</Percentage><Comment>surcharge</Comment></SurchargeListLineItem>"+
			"</ReductionAndSurchargeListLineItemDetails>",
		details.AsXML().String())
}

func TestReductionAndSurcharge_CombinedValue(t *testing.T) {
	details := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithReduction(ebinterface.NewReductionListLineItem(
			decimal.FromInt(100),
			ebinterface.PercentageAndAmountValue(
				decimal.FromInt(2),
				decimal.MustFromString("3.4599"),
			),
		).WithComment("reduction"))

	// Both render, Percentage before Amount; the amount rounds to 2 digits.
	assert.Equal(t,
		"<ReductionAndSurchargeListLineItemDetails>"+
			"<ReductionListLineItem><BaseAmount>100.00</BaseAmount><Percentage>2.00</Percentage><Amount>3.46</Amount><Comment>reduction</Comment></ReductionListLineItem>"+
			"</ReductionAndSurchargeListLineItemDetails>",
		details.AsXML().String())

	// The percentage is audit-only: the amount alone enters the sum.
	assert.Equal(t, "-3.4599", details.Sum().String())
}

func TestReductionAndSurcharge_SumSigns(t *testing.T) {
	onlyReduction := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithReduction(ebinterface.NewReductionListLineItem(
			decimal.FromInt(5),
			ebinterface.AmountValue(decimal.FromInt(2)),
		))
	assert.Equal(t, "-2", onlyReduction.Sum().String())

	onlySurcharge := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithSurcharge(ebinterface.NewSurchargeListLineItem(
			decimal.FromInt(5),
			ebinterface.AmountValue(decimal.FromInt(2)),
		))
	assert.Equal(t, "2", onlySurcharge.Sum().String())

	var empty ebinterface.ReductionAndSurchargeListLineItemDetails
	assert.True(t, empty.Sum().IsZero())
}

func TestReductionAndSurcharge_PercentageRoundsPerAdjustment(t *testing.T) {
	// 0.125% of 10 = 0.0125, rounded half away from zero to 0.01 before summing.
	details := ebinterface.ReductionAndSurchargeListLineItemDetails{}.
		WithSurcharge(ebinterface.NewSurchargeListLineItem(
			decimal.FromInt(10),
			ebinterface.PercentageValue(decimal.MustFromString("0.125")),
		))
	assert.Equal(t, "0.01", details.Sum().String())
}
