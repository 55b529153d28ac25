// Package summary builds the encoded text summary of a transaction receipt and
// renders it as a QR code.
package summary

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabapcia/rskreceipt/internal/receipt"
)

const (
	// DefaultSize is the QR image side length in pixels.
	DefaultSize = 200

	// FileName is the default name of a saved QR image.
	FileName = "Rootstock_Transaction_QR.png"

	pairSeparator = ", "
)

// ErrEncodingFailed is returned when the payload cannot be encoded into a
// symbol, for example because it exceeds the symbol capacity.
var ErrEncodingFailed = errors.New("qr encoding failed")

// Payload returns the summary text of r: "Label: value" pairs for every
// present field, in export order, joined by ", ". Values are never shortened.
func Payload(r receipt.Receipt) string {
	fields := receipt.PresentFields(r)

	pairs := make([]string, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, f.Kind.Label()+": "+f.Value)
	}
	return strings.Join(pairs, pairSeparator)
}

// Builder exports receipt summaries as QR codes.
type Builder interface {
	// PNG encodes the summary of r as a PNG image. A nil receipt returns nil.
	PNG(r *receipt.Receipt) ([]byte, error)

	// Save writes the PNG for r to path and returns it. A nil receipt is a
	// no-op: no file is created and the path is "".
	Save(path string, r *receipt.Receipt) (string, error)

	// Terminal renders the summary of r as text suitable for a terminal.
	// A nil receipt returns "".
	Terminal(r *receipt.Receipt) (string, error)
}

type config struct {
	encoder Encoder
	size    int
}

// Option configures the builder.
type Option func(*config)

// WithEncoder replaces the QR encoder.
func WithEncoder(e Encoder) Option {
	return func(c *config) {
		c.encoder = e
	}
}

// WithSize sets the image side length in pixels. Non-positive values keep
// DefaultSize.
func WithSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.size = size
		}
	}
}

type builder struct {
	cfg config
}

var _ Builder = (*builder)(nil)

// New creates a Builder using the QR encoder at DefaultSize.
func New(opts ...Option) *builder {
	cfg := config{
		encoder: NewQREncoder(),
		size:    DefaultSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &builder{cfg: cfg}
}

// PNG implements Builder.
func (b *builder) PNG(r *receipt.Receipt) ([]byte, error) {
	if r == nil {
		return nil, nil
	}

	img, err := b.cfg.encoder.Encode(Payload(*r), b.cfg.size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return img, nil
}

// Save implements Builder.
func (b *builder) Save(path string, r *receipt.Receipt) (string, error) {
	if r == nil {
		return "", nil
	}

	img, err := b.PNG(r)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Terminal implements Builder.
func (b *builder) Terminal(r *receipt.Receipt) (string, error) {
	if r == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := b.cfg.encoder.Text(&buf, Payload(*r)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingFailed, err)
	}
	return buf.String(), nil
}
