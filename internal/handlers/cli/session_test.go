package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/gabapcia/rskreceipt/internal/receipt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f fixture) session(script ...string) Dependencies {
	deps := f.deps()
	deps.Stdin = strings.NewReader(strings.Join(script, "\n"))
	return deps
}

func TestRunSession(t *testing.T) {
	t.Run("should fetch and export the current receipt", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		r := transfer()

		f.receipts.EXPECT().Fetch(mock.Anything, txHash).Return(r, nil).Once()
		f.receipts.EXPECT().Current().Return(r, true).Times(3)
		f.documents.EXPECT().Generate("/srv/receipts", &r).Return("/srv/receipts/Rootstock_Transaction_Receipt.pdf", nil).Once()
		f.summaries.EXPECT().Save("out.png", &r).Return("out.png", nil).Once()

		// Act
		err := runSession(t.Context(), f.session("fetch  "+txHash, "pdf", "qr out.png", "copy from", "quit", "show"))

		// Assert
		require.NoError(t, err)

		out := f.stdout.String()
		assert.Contains(t, out, "loading...")
		assert.Contains(t, out, "1,234,567")
		assert.Contains(t, out, "PDF saved to /srv/receipts/Rootstock_Transaction_Receipt.pdf")
		assert.Contains(t, out, "QR code saved to out.png")
		assert.Contains(t, out, "\n"+fromAddr+"\n")
		assert.NotContains(t, out, "error:")
	})

	t.Run("should report errors and keep running", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		f.receipts.EXPECT().Fetch(mock.Anything, "").Return(receipt.Receipt{}, receipt.ErrEmptyInput).Once()
		f.receipts.EXPECT().Current().Return(receipt.Receipt{}, false).Once()
		f.receipts.EXPECT().State().Return(receipt.State{Status: receipt.StatusFailed, Err: receipt.ErrEmptyInput}).Once()

		// Act
		err := runSession(t.Context(), f.session("fetch", "pdf", "show", "dance"))

		// Assert
		require.NoError(t, err)

		out := f.stdout.String()
		assert.Equal(t, 2, strings.Count(out, "error: please enter a transaction hash"))
		assert.Contains(t, out, "error: "+errNoReceipt.Error())
		assert.Contains(t, out, `error: unknown command "dance"`)
	})

	t.Run("should show the state", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		f.receipts.EXPECT().State().Return(receipt.State{Status: receipt.StatusIdle}).Once()
		f.receipts.EXPECT().State().Return(receipt.State{Status: receipt.StatusReady, Receipt: transfer()}).Once()

		// Act
		err := runSession(t.Context(), f.session("show", "show"))

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.stdout.String(), "error: "+errNoReceipt.Error())
		assert.Contains(t, f.stdout.String(), txHash)
	})

	t.Run("should reject unknown or absent fields on copy", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		r := transfer()

		f.receipts.EXPECT().Current().Return(r, true).Once()

		// Act
		err := runSession(t.Context(), f.session("copy nonce", "copy contract"))

		// Assert
		require.NoError(t, err)
		assert.Contains(t, f.stdout.String(), `error: unknown field "nonce"`)
		assert.Contains(t, f.stdout.String(), "error: Contract Address is not present in this receipt")
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		stdin, _ := io.Pipe()
		defer stdin.Close()

		deps := f.deps()
		deps.Stdin = stdin

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		// Act
		err := runSession(ctx, deps)

		// Assert
		assert.NoError(t, err)
	})
}

func TestRunSession_inputFailure(t *testing.T) {
	t.Run("should return read errors", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		cause := errors.New("stdin closed")

		deps := f.deps()
		deps.Stdin = io.MultiReader(strings.NewReader("help\n"), iotest.ErrReader(cause))

		// Act
		err := runSession(t.Context(), deps)

		// Assert
		require.ErrorIs(t, err, cause)
		assert.ErrorContains(t, err, "read input")
	})

	t.Run("should return an error for an oversized line", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		deps := f.deps()
		deps.Stdin = strings.NewReader("fetch " + strings.Repeat("a", bufio.MaxScanTokenSize) + "\n")

		// Act
		err := runSession(t.Context(), deps)

		// Assert
		assert.ErrorIs(t, err, bufio.ErrTooLong)
	})
}

func TestSessionCommand(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	err := run(t, sessionCommand(f.session("help", "exit")), "session")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(f.stdout.String(), "fetch <hash>"))
}
