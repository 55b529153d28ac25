package summary

import (
	"io"

	"github.com/skip2/go-qrcode"
)

// Encoder turns a payload into a scannable symbol.
type Encoder interface {
	// Encode returns a square PNG image of the given side length in pixels.
	Encode(payload string, size int) ([]byte, error)

	// Text writes the symbol as block characters to w.
	Text(w io.Writer, payload string) error
}

type qrEncoder struct {
	level qrcode.RecoveryLevel
}

var _ Encoder = (*qrEncoder)(nil)

// NewQREncoder creates an Encoder backed by go-qrcode with medium error
// correction.
func NewQREncoder() *qrEncoder {
	return &qrEncoder{level: qrcode.Medium}
}

// Encode implements Encoder.
func (e *qrEncoder) Encode(payload string, size int) ([]byte, error) {
	return qrcode.Encode(payload, e.level, size)
}

// Text implements Encoder.
func (e *qrEncoder) Text(w io.Writer, payload string) error {
	q, err := qrcode.New(payload, e.level)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, q.ToSmallString(false))
	return err
}
