package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TaxLabel is the literal tax-line caption shown on documents and emails.
const TaxLabel = "Tax (10%)"

// CurrencySymbol prefixes every rendered money value.
const CurrencySymbol = "$"

// FormatMoney renders a money value with the currency symbol and exactly
// two fraction digits.
func FormatMoney(value float64) string {
	return CurrencySymbol + FormatAmount(value)
}

// FormatAmount renders a money value with exactly two fraction digits and
// no currency symbol. Used for template placeholder substitution.
func FormatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// FormatQuantity renders a quantity without trailing zero noise.
func FormatQuantity(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(value, 'f', 2, 64), "0"), ".")
}

// Round2 rounds to display precision. Storage keeps full float precision;
// rounding happens only when comparing or presenting values.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
