package document

import "github.com/go-pdf/fpdf"

// Canvas places text and rules at absolute coordinates.
type Canvas interface {
	SetFont(family string, size float64)
	Text(x, y float64, s string)
	CenteredText(y float64, s string)
	Line(x1, y1, x2, y2, width float64)
}

func (op Op) apply(c Canvas) {
	switch op.Kind {
	case OpFont:
		c.SetFont(op.Family, op.Size)
	case OpText:
		c.Text(op.X, op.Y, op.Text)
	case OpCenteredText:
		c.CenteredText(op.Y, op.Text)
	case OpLine:
		c.Line(op.X, op.Y, op.X2, op.Y2, op.Width)
	}
}

// Draw executes every operation of the page on c, in order.
func (p Page) Draw(c Canvas) {
	for _, op := range p.Ops {
		op.apply(c)
	}
}

// fpdfCanvas adapts an fpdf document to the Canvas interface.
type fpdfCanvas struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

var _ Canvas = (*fpdfCanvas)(nil)

func newFpdfCanvas(pdf *fpdf.Fpdf) *fpdfCanvas {
	return &fpdfCanvas{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) SetFont(family string, size float64) {
	c.pdf.SetFont(family, "", size)
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, y, c.translate(s))
}

func (c *fpdfCanvas) CenteredText(y float64, s string) {
	s = c.translate(s)

	width, _ := c.pdf.GetPageSize()
	c.pdf.Text((width-c.pdf.GetStringWidth(s))/2, y, s)
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2, width float64) {
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}
