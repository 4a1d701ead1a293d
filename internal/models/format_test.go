package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "0", FormatCurrency(0))
	assert.Equal(t, "500", FormatCurrency(500))
	assert.Equal(t, "1,000", FormatCurrency(1000))
	assert.Equal(t, "1,00,000", FormatCurrency(100000))
	assert.Equal(t, "11,24,970", FormatCurrency(1124970))
	assert.Equal(t, "1,00,00,000", FormatCurrency(10000000))
}

func TestFormatCurrency_Negative(t *testing.T) {
	assert.Equal(t, "-1,234", FormatCurrency(-1234))
}

func TestFormatCurrency_Malformed(t *testing.T) {
	assert.Equal(t, "0", FormatCurrency(math.NaN()))
	assert.Equal(t, "0", FormatCurrency(math.Inf(1)))
}

func TestFormatCurrency_Rounds(t *testing.T) {
	assert.Equal(t, "1,001", FormatCurrency(1000.6))
}

func TestParseCurrency(t *testing.T) {
	assert.Equal(t, float64(1124970), ParseCurrency("₹ 11,24,970"))
	assert.Equal(t, float64(1124970), ParseCurrency("1124970"))
	assert.Equal(t, float64(0), ParseCurrency(""))
	assert.Equal(t, float64(0), ParseCurrency("abc"))
	assert.Equal(t, float64(0), ParseCurrency("1.2.3"))
}

func TestParseCurrency_RoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 999, 1000, 55000, 1124970, 10000000} {
		assert.Equal(t, amount, ParseCurrency(FormatCurrency(amount)))
	}
}

func TestParsePercent(t *testing.T) {
	assert.Equal(t, 12.5, ParsePercent("12.5%"))
	assert.Equal(t, float64(50), ParsePercent("50"))
	assert.Equal(t, float64(0), ParsePercent("n/a"))
}

func TestParseTenure(t *testing.T) {
	assert.Equal(t, 60, ParseTenure("60 Months"))
	assert.Equal(t, 12, ParseTenure("12"))
	assert.Equal(t, 0, ParseTenure(""))
}

func TestFormatTenure(t *testing.T) {
	assert.Equal(t, "60 Months", FormatTenureMonths(60))
	assert.Equal(t, "5 Years", FormatTenureYears(5))
	assert.Equal(t, "1.5 Years", FormatTenureYears(1.5))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "50%", FormatPercent(50))
}
