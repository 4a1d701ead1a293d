package models

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency formats an amount as a whole-rupee string with Indian-style
// digit grouping (last three digits, then groups of two), e.g. 1124970 -> "11,24,970"
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}

	rounded := int64(math.Round(math.Abs(amount)))
	digits := strconv.FormatInt(rounded, 10)

	if len(digits) > 3 {
		grouped := digits[len(digits)-3:]
		rest := digits[:len(digits)-3]

		for len(rest) > 2 {
			grouped = rest[len(rest)-2:] + "," + grouped
			rest = rest[:len(rest)-2]
		}

		if len(rest) > 0 {
			grouped = rest + "," + grouped
		}

		digits = grouped
	}

	if amount < 0 {
		return "-" + digits
	}

	return digits
}

// FormatPercent formats a percentage value with a trailing % sign
func FormatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

// FormatTenureMonths formats a tenure expressed in months
func FormatTenureMonths(months int) string {
	return strconv.Itoa(months) + " Months"
}

// FormatTenureYears formats a tenure expressed in years (one decimal at most)
func FormatTenureYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64) + " Years"
}

// ParseCurrency parses a currency string into a whole-unit amount.
// All non-digit and non-decimal characters are stripped before parsing,
// so "₹ 11,24,970" and "1124970" are equivalent. Empty or unparsable
// input yields 0, never an error.
func ParseCurrency(input string) float64 {
	return math.Round(parseNumeric(input))
}

// ParsePercent parses a percentage string such as "12.5%" into its numeric value.
// Empty or unparsable input yields 0.
func ParsePercent(input string) float64 {
	return parseNumeric(input)
}

// ParseTenure parses a tenure string such as "60 Months" into a month count.
// Empty or unparsable input yields 0.
func ParseTenure(input string) int {
	return int(math.Round(parseNumeric(input)))
}

// parseNumeric strips everything except digits and the decimal point and
// parses the remainder. Malformed input coerces to 0 so that a typo in a
// form field can never poison a computation with NaN.
func parseNumeric(input string) float64 {
	var b strings.Builder

	for _, r := range input {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}
