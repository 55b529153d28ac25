package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/rskreceipt/internal/document"
	"github.com/gabapcia/rskreceipt/internal/receipt"
	"github.com/gabapcia/rskreceipt/internal/summary"

	"github.com/urfave/cli/v3"
)

// Dependencies bundles the services and streams used by the commands.
type Dependencies struct {
	Receipts  receipt.Service
	Documents document.Generator
	Summaries summary.Builder

	// OutputDir is the default destination of generated documents.
	OutputDir string

	Stdin  io.Reader
	Stdout io.Writer
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Stdin == nil {
		d.Stdin = os.Stdin
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.OutputDir == "" {
		d.OutputDir = "."
	}
	return d
}

func newApp(deps Dependencies) *cli.Command {
	deps = deps.withDefaults()

	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "rskreceipt",
		Description:           "Fetch a Rootstock transaction receipt and export it as a PDF document or a QR code.",
		Usage:                 "rskreceipt [command] [flags]",
		Reader:                deps.Stdin,
		Writer:                deps.Stdout,
		Commands: []*cli.Command{
			showCommand(deps),
			pdfCommand(deps),
			qrCommand(deps),
			sessionCommand(deps),
		},
	}
}

// Run initializes and executes the rskreceipt CLI application with os.Args.
//
// Available commands:
//
//   - `show`: Fetches a receipt and prints its fields.
//   - `pdf`: Fetches a receipt and writes the PDF document.
//   - `qr`: Fetches a receipt and writes or prints its QR code.
//   - `session`: Reads commands from stdin, keeping the last fetched receipt.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}
