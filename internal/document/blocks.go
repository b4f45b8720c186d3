package document

// Kind distinguishes the two billing document shapes.
type Kind string

const (
	KindQuote   Kind = "quote"
	KindInvoice Kind = "invoice"
)

// BlockType identifies what a section of a rendered document holds.
type BlockType string

const (
	BlockTitle       BlockType = "title"
	BlockHeading     BlockType = "heading"
	BlockParties     BlockType = "parties"
	BlockItemTable   BlockType = "item_table"
	BlockTotals      BlockType = "totals"
	BlockNotes       BlockType = "notes"
	BlockPaymentLink BlockType = "payment_link"
)

// Field is a labeled value inside a parties block.
type Field struct {
	Label string
	Value string
}

// Table holds the pre-formatted item grid.
type Table struct {
	Header []string
	Rows   [][]string
}

// TotalRow is one line of the totals block; Emphasis marks the grand total.
type TotalRow struct {
	Label    string
	Value    string
	Emphasis bool
}

// Block is one ordered section of a rendered document. Only the fields
// relevant to its Type are populated.
type Block struct {
	Type   BlockType
	Text   string
	Fields []Field
	Table  *Table
	Totals []TotalRow
}

// Style carries the resolved palette a writer needs. Primary reflects any
// branding override; the remaining colors come from the theme.
type Style struct {
	Theme   Theme
	Primary Color
}

// Document is the fully resolved, layout-independent form of a quote or
// invoice, ready to be written to any output format.
type Document struct {
	Kind   Kind
	Number string
	Style  Style
	Blocks []Block
}
