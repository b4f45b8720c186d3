package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyberbiz/kyberbiz/internal/billing"
)

func ptr(v float64) *float64 { return &v }

func sampleInvoice() Record {
	items := []billing.LineItem{
		{Description: "Consulting", Quantity: ptr(2), UnitPrice: ptr(50)},
	}
	return Record{
		Kind:        KindInvoice,
		Number:      "INV-20260115-0A1B2C3D",
		ClientName:  "Acme Co",
		ClientEmail: "billing@acme.test",
		CreatedAt:   "2026-01-15T09:30:00Z",
		DueDate:     "2026-02-15T00:00:00Z",
		Status:      "draft",
		Items:       items,
		Totals:      billing.Compute(items),
		PaymentLink: "https://app.test/pay/123",
	}
}

func blockOf(t *testing.T, doc *Document, kind BlockType) Block {
	t.Helper()
	for _, b := range doc.Blocks {
		if b.Type == kind {
			return b
		}
	}
	t.Fatalf("missing %s block", kind)
	return Block{}
}

func TestRenderInvoice(t *testing.T) {
	doc, err := Render(sampleInvoice(), Branding{CompanyName: "Orbit Labs"}, "modern")
	require.NoError(t, err)

	assert.Equal(t, KindInvoice, doc.Kind)
	assert.Equal(t, "modern", doc.Style.Theme.ID)
	assert.Equal(t, doc.Style.Theme.Primary, doc.Style.Primary)

	assert.Equal(t, "Orbit Labs", blockOf(t, doc, BlockTitle).Text)
	assert.Equal(t, "INVOICE: INV-20260115-0A1B2C3D", blockOf(t, doc, BlockHeading).Text)

	parties := blockOf(t, doc, BlockParties)
	assert.Contains(t, parties.Fields, Field{Label: "Bill To", Value: "Acme Co"})
	assert.Contains(t, parties.Fields, Field{Label: "Date", Value: "2026-01-15"})
	assert.Contains(t, parties.Fields, Field{Label: "Due Date", Value: "2026-02-15"})
	assert.Contains(t, parties.Fields, Field{Label: "Status", Value: "DRAFT"})

	table := blockOf(t, doc, BlockItemTable).Table
	assert.Equal(t, []string{"Description", "Qty", "Unit Price", "Total"}, table.Header)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Consulting", "2", "$50.00", "$100.00"}, table.Rows[0])

	totals := blockOf(t, doc, BlockTotals).Totals
	require.Len(t, totals, 3)
	assert.Equal(t, TotalRow{Label: "Subtotal", Value: "$100.00"}, totals[0])
	assert.Equal(t, TotalRow{Label: "Tax (10%)", Value: "$10.00"}, totals[1])
	assert.Equal(t, TotalRow{Label: "Total", Value: "$110.00", Emphasis: true}, totals[2])

	assert.Equal(t, "https://app.test/pay/123", blockOf(t, doc, BlockPaymentLink).Text)
}

func TestRenderQuoteOmitsInvoiceFields(t *testing.T) {
	rec := sampleInvoice()
	rec.Kind = KindQuote
	rec.Number = "QUO-20260115-0A1B2C3D"
	rec.ValidUntil = "2026-03-01T00:00:00Z"

	doc, err := Render(rec, Branding{}, "classic")
	require.NoError(t, err)

	assert.Equal(t, "QUOTE: QUO-20260115-0A1B2C3D", blockOf(t, doc, BlockHeading).Text)

	parties := blockOf(t, doc, BlockParties)
	assert.Contains(t, parties.Fields, Field{Label: "Prepared For", Value: "Acme Co"})
	assert.Contains(t, parties.Fields, Field{Label: "Valid Until", Value: "2026-03-01"})
	for _, f := range parties.Fields {
		assert.NotEqual(t, "Due Date", f.Label)
		assert.NotEqual(t, "Status", f.Label)
	}

	for _, b := range doc.Blocks {
		assert.NotEqual(t, BlockPaymentLink, b.Type, "quotes carry no payment link")
	}
}

func TestRenderDefaults(t *testing.T) {
	rec := sampleInvoice()
	rec.Items = nil
	rec.Totals = billing.Compute(nil)
	rec.PaymentLink = ""

	doc, err := Render(rec, Branding{}, "no-such-theme")
	require.NoError(t, err)

	assert.Equal(t, DefaultThemeID, doc.Style.Theme.ID)
	assert.Equal(t, DefaultCompanyName, blockOf(t, doc, BlockTitle).Text)
	assert.Empty(t, blockOf(t, doc, BlockItemTable).Table.Rows)
	assert.Equal(t, "$0.00", blockOf(t, doc, BlockTotals).Totals[2].Value)
}

func TestRenderBrandingPrimaryOverride(t *testing.T) {
	doc, err := Render(sampleInvoice(), Branding{PrimaryColor: "#10b981"}, "professional")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x10, G: 0xb9, B: 0x81}, doc.Style.Primary)
	assert.NotEqual(t, doc.Style.Theme.Primary, doc.Style.Primary)
}

func TestRenderInvalidBrandingColor(t *testing.T) {
	_, err := Render(sampleInvoice(), Branding{PrimaryColor: "teal"}, "professional")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestRenderIsDeterministic(t *testing.T) {
	rec := sampleInvoice()
	first, err := Render(rec, Branding{}, "minimal")
	require.NoError(t, err)
	second, err := Render(rec, Branding{}, "minimal")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#06b6d4")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x06, G: 0xb6, B: 0xd4}, c)

	for _, bad := range []string{"", "06b6d4", "#06b6d", "#zzzzzz", "#06b6d4aa"} {
		_, err := ParseHexColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}
