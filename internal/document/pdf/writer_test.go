package pdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyberbiz/kyberbiz/internal/billing"
	appconfig "github.com/kyberbiz/kyberbiz/internal/config"
	"github.com/kyberbiz/kyberbiz/internal/document"
)

func ptr(v float64) *float64 { return &v }

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	holder, err := appconfig.NewDocumentProfileHolder()
	require.NoError(t, err)
	return NewWriter(holder)
}

func renderSample(t *testing.T, items []billing.LineItem, theme string) *document.Document {
	t.Helper()
	doc, err := document.Render(document.Record{
		Kind:        document.KindInvoice,
		Number:      "INV-20260115-0A1B2C3D",
		ClientName:  "Acme Co",
		ClientEmail: "billing@acme.test",
		CreatedAt:   "2026-01-15T09:30:00Z",
		DueDate:     "2026-02-15T00:00:00Z",
		Status:      "sent",
		Items:       items,
		Totals:      billing.Compute(items),
		Notes:       "Thanks for your business.",
		PaymentLink: "https://app.test/pay/123",
	}, document.Branding{CompanyName: "Orbit Labs"}, theme)
	require.NoError(t, err)
	return doc
}

func TestWriteProducesPDF(t *testing.T) {
	w := newTestWriter(t)

	items := []billing.LineItem{
		{Description: "Consulting", Quantity: ptr(2), UnitPrice: ptr(50)},
		{Description: "Hosting", Quantity: ptr(1), UnitPrice: ptr(25.5)},
	}

	for _, theme := range document.Themes() {
		t.Run(theme.ID, func(t *testing.T) {
			out, err := w.Write(renderSample(t, items, theme.ID))
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestWriteEmptyItemTable(t *testing.T) {
	w := newTestWriter(t)

	out, err := w.Write(renderSample(t, nil, "professional"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestWriteLongDocumentSpansPages(t *testing.T) {
	w := newTestWriter(t)

	items := make([]billing.LineItem, 0, 120)
	for i := 0; i < 120; i++ {
		items = append(items, billing.LineItem{
			Description: fmt.Sprintf("Line item %03d", i),
			Quantity:    ptr(1),
			UnitPrice:   ptr(9.99),
		})
	}

	short, err := w.Write(renderSample(t, items[:2], "professional"))
	require.NoError(t, err)
	long, err := w.Write(renderSample(t, items, "professional"))
	require.NoError(t, err)
	assert.Greater(t, len(long), len(short))
}

func TestWriteRejectsUnknownBlock(t *testing.T) {
	w := newTestWriter(t)

	_, err := w.Write(&document.Document{
		Kind:   document.KindInvoice,
		Style:  document.Style{Theme: document.ThemeByID("professional")},
		Blocks: []document.Block{{Type: document.BlockType("banner")}},
	})
	assert.Error(t, err)
}
