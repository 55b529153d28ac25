package document

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gabapcia/rskreceipt/internal/receipt"

	"github.com/go-pdf/fpdf"
)

// FileName is the name of the generated document.
const FileName = "Rootstock_Transaction_Receipt.pdf"

// Generator renders receipts as PDF documents.
type Generator interface {
	// Render writes the PDF for r to w. A nil receipt writes nothing.
	Render(w io.Writer, r *receipt.Receipt) error

	// Generate writes the PDF for r to FileName inside dir and returns its
	// path. A nil receipt is a no-op: no file is created and the path is "".
	Generate(dir string, r *receipt.Receipt) (string, error)
}

// config holds renderer settings.
type config struct {
	now      func() time.Time // clock for the "Generated on" line and PDF metadata
	compress bool             // compress page content streams
}

// Option configures the renderer.
type Option func(*config)

// WithClock replaces time.Now as the generation timestamp source. Rendering
// the same receipt on the same calendar day yields identical bytes.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithoutCompression leaves page content streams uncompressed.
func WithoutCompression() Option {
	return func(c *config) {
		c.compress = false
	}
}

type renderer struct {
	cfg config
}

var _ Generator = (*renderer)(nil)

// New creates a PDF renderer. By default it uses time.Now and compresses
// content streams.
func New(opts ...Option) *renderer {
	cfg := config{
		now:      time.Now,
		compress: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &renderer{cfg: cfg}
}

// Render implements Generator.
func (g *renderer) Render(w io.Writer, r *receipt.Receipt) error {
	if r == nil {
		return nil
	}

	// Only the calendar day is shown, so the metadata dates are truncated to
	// it as well. Renders of the same receipt on the same day are identical.
	now := g.cfg.now()
	generatedAt := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.cfg.compress)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(generatedAt)
	pdf.SetModificationDate(generatedAt)
	pdf.SetTitle(title, true)
	pdf.SetCreator(attribution, true)
	pdf.AddPage()

	Layout(*r, generatedAt).Draw(newFpdfCanvas(pdf))

	return pdf.Output(w)
}

// Generate implements Generator. The document is fully rendered in memory
// before the file is written.
func (g *renderer) Generate(dir string, r *receipt.Receipt) (string, error) {
	if r == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := g.Render(&buf, r); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
