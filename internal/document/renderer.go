package document

import (
	"fmt"
	"strings"

	"github.com/kyberbiz/kyberbiz/internal/billing"
)

// DefaultCompanyName is used when branding has not been configured.
const DefaultCompanyName = "KyberBusiness"

// Record is the neutral input a quote or invoice maps into before rendering.
// Timestamps are ISO strings; the renderer keeps only the date portion.
type Record struct {
	Kind          Kind
	Number        string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	CreatedAt     string
	ValidUntil    string
	DueDate       string
	Status        string
	Items         []billing.LineItem
	Totals        billing.Totals
	Notes         string
	PaymentLink   string
}

// Branding is the subset of company settings a document displays.
type Branding struct {
	CompanyName  string
	PrimaryColor string
	LogoURL      string
}

// Render resolves a record into an ordered block document. It is pure: the
// same record, branding and theme always produce the same output. A branding
// primary color overrides the theme's; a malformed one fails the render.
func Render(rec Record, branding Branding, themeID string) (*Document, error) {
	theme := ThemeByID(themeID)

	primary := theme.Primary
	if branding.PrimaryColor != "" {
		parsed, err := ParseHexColor(branding.PrimaryColor)
		if err != nil {
			return nil, err
		}
		primary = parsed
	}

	company := strings.TrimSpace(branding.CompanyName)
	if company == "" {
		company = DefaultCompanyName
	}

	doc := &Document{
		Kind:   rec.Kind,
		Number: rec.Number,
		Style:  Style{Theme: theme, Primary: primary},
	}

	doc.Blocks = append(doc.Blocks, Block{Type: BlockTitle, Text: company})
	doc.Blocks = append(doc.Blocks, Block{
		Type: BlockHeading,
		Text: fmt.Sprintf("%s: %s", headingLabel(rec.Kind), rec.Number),
	})
	doc.Blocks = append(doc.Blocks, Block{Type: BlockParties, Fields: partyFields(rec)})
	doc.Blocks = append(doc.Blocks, Block{Type: BlockItemTable, Table: itemTable(rec.Items)})
	doc.Blocks = append(doc.Blocks, Block{Type: BlockTotals, Totals: totalRows(rec.Totals)})

	if strings.TrimSpace(rec.Notes) != "" {
		doc.Blocks = append(doc.Blocks, Block{Type: BlockNotes, Text: rec.Notes})
	}
	if rec.Kind == KindInvoice && rec.PaymentLink != "" {
		doc.Blocks = append(doc.Blocks, Block{Type: BlockPaymentLink, Text: rec.PaymentLink})
	}
	return doc, nil
}

func headingLabel(kind Kind) string {
	if kind == KindQuote {
		return "QUOTE"
	}
	return "INVOICE"
}

func partyFields(rec Record) []Field {
	fields := []Field{{Label: billToLabel(rec.Kind), Value: rec.ClientName}}
	if rec.ClientEmail != "" {
		fields = append(fields, Field{Label: "Email", Value: rec.ClientEmail})
	}
	if rec.ClientAddress != "" {
		fields = append(fields, Field{Label: "Address", Value: rec.ClientAddress})
	}
	fields = append(fields, Field{Label: "Date", Value: datePart(rec.CreatedAt)})
	if rec.Kind == KindQuote && rec.ValidUntil != "" {
		fields = append(fields, Field{Label: "Valid Until", Value: datePart(rec.ValidUntil)})
	}
	if rec.Kind == KindInvoice && rec.DueDate != "" {
		fields = append(fields, Field{Label: "Due Date", Value: datePart(rec.DueDate)})
	}
	if rec.Kind == KindInvoice && rec.Status != "" {
		fields = append(fields, Field{Label: "Status", Value: strings.ToUpper(rec.Status)})
	}
	return fields
}

func billToLabel(kind Kind) string {
	if kind == KindQuote {
		return "Prepared For"
	}
	return "Bill To"
}

// datePart keeps the YYYY-MM-DD prefix of an ISO timestamp.
func datePart(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}

func itemTable(items []billing.LineItem) *Table {
	table := &Table{
		Header: []string{"Description", "Qty", "Unit Price", "Total"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{
			item.Description,
			billing.FormatQuantity(item.Qty()),
			billing.FormatMoney(item.Price()),
			billing.FormatMoney(item.Amount()),
		})
	}
	return table
}

func totalRows(totals billing.Totals) []TotalRow {
	return []TotalRow{
		{Label: "Subtotal", Value: billing.FormatMoney(totals.Subtotal)},
		{Label: billing.TaxLabel, Value: billing.FormatMoney(totals.Tax)},
		{Label: "Total", Value: billing.FormatMoney(totals.Total), Emphasis: true},
	}
}
