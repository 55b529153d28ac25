// Package document renders a normalized transaction receipt as a single page
// PDF. Layout is a pure fold over the receipt field directives producing
// drawing operations; a Canvas executes them.
package document

import (
	"time"

	"github.com/gabapcia/rskreceipt/internal/receipt"
)

// Page geometry in millimetres on an A4 portrait page.
const (
	pageWidth = 210.0
	margin    = 15.0

	titleY     = 15.0
	generatedY = 22.0
	ruleY      = 25.0
	ruleWidth  = 0.5
	bodyTop    = 35.0
	valueX     = 55.0
	footerY    = 280.0

	// longValueThreshold is the number of characters above which a value is
	// split over two monospaced lines below its label.
	longValueThreshold = 60
	firstSegmentDY     = 5.0
	secondSegmentDY    = 10.0
	splitExtraHeight   = 15.0

	qrNoteLineDY = 5.0
)

// Fonts and sizes.
const (
	bodyFont = "Helvetica"
	monoFont = "Courier"

	titleSize = 16.0
	smallSize = 10.0
	bodySize  = 12.0
)

const (
	title       = "Rootstock Transaction Receipt"
	attribution = "This receipt was generated using the Rootstock Blockchain Receipt Generator"
	qrNoteFirst = "A QR code containing this transaction information is available"
	qrNoteLast  = "through the qr command of the receipt generator."
	dateLayout  = "2006-01-02"
)

// OpKind enumerates drawing operations.
type OpKind int

const (
	OpFont OpKind = iota
	OpText
	OpCenteredText
	OpLine
)

// Op is a single drawing operation. Which fields are meaningful depends on Kind:
// OpFont uses Family and Size, OpText uses X, Y and Text, OpCenteredText uses
// Y and Text, OpLine uses X, Y, X2, Y2 and Width.
type Op struct {
	Kind   OpKind
	X, Y   float64
	X2, Y2 float64
	Width  float64
	Text   string
	Family string
	Size   float64
}

func font(family string, size float64) Op {
	return Op{Kind: OpFont, Family: family, Size: size}
}

func text(x, y float64, s string) Op {
	return Op{Kind: OpText, X: x, Y: y, Text: s}
}

func centered(y float64, s string) Op {
	return Op{Kind: OpCenteredText, Y: y, Text: s}
}

func line(x1, y1, x2, y2, width float64) Op {
	return Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Width: width}
}

// Block is the vertical band occupied by one field.
// Consecutive blocks always satisfy next.Top == prev.Bottom.
type Block struct {
	Kind     receipt.FieldKind
	Top      float64
	Bottom   float64
	Segments []string // the value as placed, one entry per line
	Ops      []Op
}

// Page is a complete layout.
type Page struct {
	Blocks []Block
	Ops    []Op
}

// directive describes how a field kind is placed.
type directive struct {
	label   string
	inline  bool    // "Label: value" on a single line
	advance float64 // vertical space consumed after the block content
}

var directives = map[receipt.FieldKind]directive{
	receipt.FieldTransactionHash:   {label: "Transaction Hash", advance: 10},
	receipt.FieldFrom:              {label: "From Address", advance: 10},
	receipt.FieldTo:                {label: "To Address", advance: 10},
	receipt.FieldContractAddress:   {label: "Contract Address", advance: 10},
	receipt.FieldCumulativeGasUsed: {label: "Gas Used", inline: true, advance: 7},
	receipt.FieldBlockNumber:       {label: "Block Number", inline: true, advance: 15},
}

// splitLong splits values longer than longValueThreshold characters into the
// first longValueThreshold characters and the remainder.
func splitLong(value string) (string, string, bool) {
	runes := []rune(value)
	if len(runes) <= longValueThreshold {
		return value, "", false
	}
	return string(runes[:longValueThreshold]), string(runes[longValueThreshold:]), true
}

func (d directive) place(f receipt.Field, top float64) Block {
	b := Block{Kind: f.Kind, Top: top}

	if d.inline {
		b.Segments = []string{f.Value}
		b.Ops = []Op{text(margin, top, d.label+": "+f.Value)}
		b.Bottom = top + d.advance
		return b
	}

	b.Ops = []Op{text(margin, top, d.label+":")}

	height := d.advance
	if head, tail, ok := splitLong(f.Value); ok {
		b.Segments = []string{head, tail}
		b.Ops = append(b.Ops,
			font(monoFont, bodySize),
			text(margin, top+firstSegmentDY, head),
			text(margin, top+secondSegmentDY, tail),
			font(bodyFont, bodySize),
		)
		height += splitExtraHeight
	} else {
		b.Segments = []string{f.Value}
		b.Ops = append(b.Ops, text(valueX, top, f.Value))
	}

	b.Bottom = top + height
	return b
}

func header(generatedAt time.Time) []Op {
	return []Op{
		font(bodyFont, titleSize),
		centered(titleY, title),
		font(bodyFont, smallSize),
		centered(generatedY, "Generated on: "+generatedAt.Format(dateLayout)),
		line(margin, ruleY, pageWidth-margin, ruleY, ruleWidth),
		font(bodyFont, bodySize),
	}
}

func qrNote(y float64) []Op {
	return []Op{
		text(margin, y, qrNoteFirst),
		text(margin, y+qrNoteLineDY, qrNoteLast),
	}
}

func footer() []Op {
	return []Op{
		font(bodyFont, smallSize),
		centered(footerY, attribution),
	}
}

// Layout places r on a page. Absent optional fields produce no block, so the
// following blocks move up and no gap is left.
func Layout(r receipt.Receipt, generatedAt time.Time) Page {
	page := Page{Ops: header(generatedAt)}

	y := bodyTop
	for _, f := range receipt.PresentFields(r) {
		b := directives[f.Kind].place(f, y)

		page.Blocks = append(page.Blocks, b)
		page.Ops = append(page.Ops, b.Ops...)
		y = b.Bottom
	}

	page.Ops = append(page.Ops, qrNote(y)...)
	page.Ops = append(page.Ops, footer()...)
	return page
}
