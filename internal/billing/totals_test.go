package billing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestCompute(t *testing.T) {
	t.Run("BasicScenario", func(t *testing.T) {
		totals := Compute([]LineItem{
			{Description: "Consulting", Quantity: ptr(2), UnitPrice: ptr(50.00)},
		})
		assert.Equal(t, 100.00, Round2(totals.Subtotal))
		assert.Equal(t, 10.00, Round2(totals.Tax))
		assert.Equal(t, 110.00, Round2(totals.Total))
	})

	t.Run("EmptyItems", func(t *testing.T) {
		totals := Compute(nil)
		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Tax)
		assert.Equal(t, 0.0, totals.Total)
	})

	t.Run("Defaults", func(t *testing.T) {
		// Omitted quantity defaults to 1, omitted price to 0.
		totals := Compute([]LineItem{
			{Description: "Setup fee", UnitPrice: ptr(40)},
			{Description: "Placeholder", Quantity: ptr(3)},
		})
		assert.Equal(t, 40.00, Round2(totals.Subtotal))
		assert.Equal(t, 4.00, Round2(totals.Tax))
		assert.Equal(t, 44.00, Round2(totals.Total))
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		a := []LineItem{
			{Description: "a", Quantity: ptr(1), UnitPrice: ptr(19.99)},
			{Description: "b", Quantity: ptr(4), UnitPrice: ptr(5.25)},
			{Description: "c", Quantity: ptr(2), UnitPrice: ptr(0.01)},
		}
		b := []LineItem{a[2], a[0], a[1]}
		assert.Equal(t, Round2(Compute(a).Total), Round2(Compute(b).Total))
	})

	t.Run("TotalsInvariant", func(t *testing.T) {
		items := []LineItem{
			{Description: "x", Quantity: ptr(3), UnitPrice: ptr(33.33)},
			{Description: "y", Quantity: ptr(7), UnitPrice: ptr(1.07)},
		}
		totals := Compute(items)
		assert.Equal(t, Round2(totals.Subtotal*TaxRate), Round2(totals.Tax))
		assert.Equal(t, Round2(totals.Subtotal+totals.Tax), Round2(totals.Total))
	})

	t.Run("NegativeLinesPassThrough", func(t *testing.T) {
		// Credit lines are allowed; the calculator does not reject them.
		totals := Compute([]LineItem{
			{Description: "Service", Quantity: ptr(1), UnitPrice: ptr(100)},
			{Description: "Discount", Quantity: ptr(1), UnitPrice: ptr(-20)},
		})
		assert.Equal(t, 80.00, Round2(totals.Subtotal))
		assert.Equal(t, 88.00, Round2(totals.Total))
	})
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$150.00", FormatMoney(150.0))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$10.50", FormatMoney(10.5))
	assert.Equal(t, "$-20.00", FormatMoney(-20))
	assert.Equal(t, "150.00", FormatAmount(150.0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "2.5", FormatQuantity(2.5))
	assert.Equal(t, "0", FormatQuantity(0))
}

func TestNewNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	quote := NewNumber(QuotePrefix, now)
	invoice := NewNumber(InvoicePrefix, now)

	assert.Regexp(t, regexp.MustCompile(`^QT-20260314-[0-9A-F]{8}$`), quote)
	assert.Regexp(t, regexp.MustCompile(`^INV-20260314-[0-9A-F]{8}$`), invoice)
	assert.NotEqual(t, quote, invoice)
}
