package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appconfig "github.com/kyberbiz/kyberbiz/internal/config"
	"github.com/kyberbiz/kyberbiz/internal/document"
)

// Item grid column spans out of maroto's 12-column row.
const (
	descCols   = 6
	qtyCols    = 2
	priceCols  = 2
	amountCols = 2
)

var gridColor = props.Color{Red: 0xd1, Green: 0xd5, Blue: 0xdb}

// Writer turns resolved documents into PDF bytes. The page size comes from
// the hot-reloadable document profile, so it is read on every write.
type Writer struct {
	profile *appconfig.DocumentProfileHolder
}

func NewWriter(profile *appconfig.DocumentProfileHolder) *Writer {
	return &Writer{profile: profile}
}

func (w *Writer) Write(doc *document.Document) ([]byte, error) {
	m := maroto.New(w.build(doc.Style))

	for _, block := range doc.Blocks {
		switch block.Type {
		case document.BlockTitle:
			w.writeTitle(m, doc.Style, block)
		case document.BlockHeading:
			w.writeHeading(m, doc.Style, block)
		case document.BlockParties:
			w.writeParties(m, doc.Style, block)
		case document.BlockItemTable:
			w.writeItemTable(m, doc.Style, block)
		case document.BlockTotals:
			w.writeTotals(m, doc.Style, block)
		case document.BlockNotes:
			w.writeNotes(m, doc.Style, block)
		case document.BlockPaymentLink:
			w.writePaymentLink(m, doc.Style, block)
		default:
			return nil, fmt.Errorf("unsupported block type %q", block.Type)
		}
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return rendered.GetBytes(), nil
}

func (w *Writer) build(style document.Style) *entity.Config {
	size := pagesize.Letter
	if w.profile.Get().PageSize == "a4" {
		size = pagesize.A4
	}
	return config.NewBuilder().
		WithPageSize(size).
		WithLeftMargin(25.4).
		WithTopMargin(25.4).
		WithRightMargin(25.4).
		WithDefaultFont(&props.Font{Family: style.Theme.Font}).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
}

func (w *Writer) writeTitle(m core.Maroto, style document.Style, block document.Block) {
	m.AddRow(14, text.NewCol(12, block.Text, props.Text{
		Size:   22,
		Style:  fontstyle.Bold,
		Family: style.Theme.Font,
		Color:  colorOf(style.Primary),
	}))
	m.AddRow(3, line.NewCol(12, props.Line{
		Color:     colorOf(style.Primary),
		Thickness: 0.8,
	}))
}

func (w *Writer) writeHeading(m core.Maroto, style document.Style, block document.Block) {
	m.AddRow(12, text.NewCol(12, block.Text, props.Text{
		Size:   14,
		Style:  fontstyle.Bold,
		Family: style.Theme.Font,
		Color:  colorOf(style.Theme.Secondary),
		Top:    3,
	}))
}

func (w *Writer) writeParties(m core.Maroto, style document.Style, block document.Block) {
	for _, field := range block.Fields {
		m.AddRow(6,
			text.NewCol(3, field.Label, props.Text{
				Size:   9,
				Style:  fontstyle.Bold,
				Family: style.Theme.Font,
			}),
			text.NewCol(9, field.Value, props.Text{
				Size:   9,
				Family: style.Theme.Font,
			}),
		)
	}
	m.AddRow(4, col.New(12))
}

func (w *Writer) writeItemTable(m core.Maroto, style document.Style, block document.Block) {
	header := block.Table.Header
	m.AddRow(8,
		headerCol(descCols, header[0], style, align.Left),
		headerCol(qtyCols, header[1], style, align.Right),
		headerCol(priceCols, header[2], style, align.Right),
		headerCol(amountCols, header[3], style, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorOf(style.Theme.HeaderBG)})

	for _, row := range block.Table.Rows {
		m.AddRow(7,
			bodyCol(descCols, row[0], style, align.Left),
			bodyCol(qtyCols, row[1], style, align.Right),
			bodyCol(priceCols, row[2], style, align.Right),
			bodyCol(amountCols, row[3], style, align.Right),
		)
	}
	m.AddRow(4, col.New(12))
}

func (w *Writer) writeTotals(m core.Maroto, style document.Style, block document.Block) {
	for _, row := range block.Totals {
		labelStyle := fontstyle.Normal
		size := 9.0
		if row.Emphasis {
			labelStyle = fontstyle.Bold
			size = 11
			// Rule above the grand total in the primary color.
			m.AddRow(2,
				col.New(8),
				line.NewCol(4, props.Line{
					Color:     colorOf(style.Primary),
					Thickness: 0.6,
				}),
			)
		}
		m.AddRow(7,
			col.New(8),
			text.NewCol(2, row.Label, props.Text{
				Size:   size,
				Style:  labelStyle,
				Family: style.Theme.Font,
			}),
			text.NewCol(2, row.Value, props.Text{
				Size:   size,
				Style:  labelStyle,
				Family: style.Theme.Font,
				Align:  align.Right,
			}),
		)
	}
}

func (w *Writer) writeNotes(m core.Maroto, style document.Style, block document.Block) {
	m.AddRow(8, text.NewCol(12, "Notes", props.Text{
		Size:   10,
		Style:  fontstyle.Bold,
		Family: style.Theme.Font,
		Color:  colorOf(style.Theme.Secondary),
		Top:    3,
	}))
	m.AddRow(14, text.NewCol(12, block.Text, props.Text{
		Size:   9,
		Family: style.Theme.Font,
	}))
}

func (w *Writer) writePaymentLink(m core.Maroto, style document.Style, block document.Block) {
	m.AddRow(10, text.NewCol(12, "Pay online: "+block.Text, props.Text{
		Size:      9,
		Family:    style.Theme.Font,
		Color:     colorOf(style.Primary),
		Hyperlink: &block.Text,
		Top:       3,
	}))
}

func headerCol(span int, value string, style document.Style, al align.Type) core.Col {
	return text.NewCol(span, value, props.Text{
		Size:   9,
		Style:  fontstyle.Bold,
		Family: style.Theme.Font,
		Color:  colorOf(style.Theme.HeaderText),
		Align:  al,
		Left:   1,
		Right:  1,
	})
}

func bodyCol(span int, value string, style document.Style, al align.Type) core.Col {
	return text.NewCol(span, value, props.Text{
		Size:   9,
		Family: style.Theme.Font,
		Align:  al,
		Left:   1,
		Right:  1,
	}).WithStyle(&props.Cell{
		BorderType:  border.Full,
		BorderColor: &gridColor,
	})
}

func colorOf(c document.Color) *props.Color {
	return &props.Color{Red: c.R, Green: c.G, Blue: c.B}
}
