package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/ebinvoice/internal/decimal"
)

func TestRound_HalfAwayFromZero(t *testing.T) {
	// Midpoints move away from zero, not to the even neighbor.
	assert.Equal(t, "0.01", decimal.Round(decimal.MustFromString("0.005"), 2).String())
	assert.Equal(t, "-0.01", decimal.Round(decimal.MustFromString("-0.005"), 2).String())
	assert.Equal(t, "0.02", decimal.Round(decimal.MustFromString("0.015"), 2).String())
	assert.Equal(t, "5.5", decimal.Round(decimal.MustFromString("5.45"), 1).String())
}

func TestRound_LeavesInputIntact(t *testing.T) {
	v := decimal.MustFromString("10.2345")
	_ = decimal.Round(v, 2)
	assert.Equal(t, "10.2345", v.String())
}

func TestRound_Idempotent(t *testing.T) {
	v := decimal.MustFromString("1021.2642573728")
	once := decimal.Round(v, 2)
	twice := decimal.Round(once, 2)
	assert.True(t, once.Equal(twice))
	assert.Equal(t, "1021.26", twice.String())
}

func TestPercent(t *testing.T) {
	result := decimal.Percent(decimal.MustFromString("1020"), decimal.MustFromString("20"))
	assert.True(t, result.Equal(dec.NewFromInt(204)))
}

func TestAddPercent(t *testing.T) {
	result := decimal.AddPercent(decimal.MustFromString("1020"), decimal.MustFromString("20"))
	assert.True(t, result.Equal(dec.NewFromInt(1224)))
}

func TestFromString(t *testing.T) {
	d, err := decimal.FromString("123456.78")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	d := decimal.MustFromString("999.99")
	assert.True(t, d.Equal(dec.RequireFromString("999.99")))

	assert.Panics(t, func() {
		decimal.MustFromString("invalid")
	})
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		decimal.MustFromString("1.10"),
		decimal.MustFromString("2.20"),
		decimal.MustFromString("-0.30"),
	}
	assert.Equal(t, "3", decimal.Sum(values).String())
}
