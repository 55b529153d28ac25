package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/gabapcia/rskreceipt/internal/receipt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

// errNoReceipt is reported when an export is requested before a receipt is loaded.
var errNoReceipt = errors.New("no receipt loaded, fetch a transaction first")

func hashFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "hash",
		Usage:    "Transaction hash to look up",
		Required: true,
	}
}

// displayValue formats f for reading. Numeric fields get thousands separators.
func displayValue(r receipt.Receipt, f receipt.Field) string {
	switch f.Kind {
	case receipt.FieldCumulativeGasUsed:
		return humanize.BigComma(new(big.Int).SetUint64(r.CumulativeGasUsed))
	case receipt.FieldBlockNumber:
		return humanize.BigComma(new(big.Int).SetUint64(r.BlockNumber))
	default:
		return f.Value
	}
}

func printReceipt(w io.Writer, r receipt.Receipt) {
	for _, f := range receipt.PresentFields(r) {
		fmt.Fprintf(w, "%-21s %s\n", f.Kind.Label()+":", displayValue(r, f))
	}
}

// current returns the Ready receipt of svc, or nil.
func current(svc receipt.Service) *receipt.Receipt {
	r, ok := svc.Current()
	if !ok {
		return nil
	}
	return &r
}

func exportPDF(deps Dependencies, dir string) error {
	r := current(deps.Receipts)
	if r == nil {
		return errNoReceipt
	}

	path, err := deps.Documents.Generate(dir, r)
	if err != nil {
		return fmt.Errorf("generate pdf: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "PDF saved to %s\n", path)
	return nil
}

// exportQR writes the QR image to path, or prints the symbol when path is empty.
func exportQR(deps Dependencies, path string) error {
	r := current(deps.Receipts)
	if r == nil {
		return errNoReceipt
	}

	if path == "" {
		symbol, err := deps.Summaries.Terminal(r)
		if err != nil {
			return err
		}

		fmt.Fprint(deps.Stdout, symbol)
		return nil
	}

	saved, err := deps.Summaries.Save(path, r)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "QR code saved to %s\n", saved)
	return nil
}

// showCommand returns a CLI command that fetches a receipt and prints it.
//
// Usage example:
//
//	rskreceipt show --hash 0xABC123...
func showCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Fetch a transaction receipt and print its fields.",
		Usage:       "Prints the normalized receipt of a transaction.",
		Flags:       []cli.Flag{hashFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			r, err := deps.Receipts.Fetch(ctx, c.String("hash"))
			if err != nil {
				return err
			}

			printReceipt(deps.Stdout, r)
			return nil
		},
	}
}

// pdfCommand returns a CLI command that fetches a receipt and writes its PDF.
//
// Usage example:
//
//	rskreceipt pdf --hash 0xABC123... --out ./receipts
func pdfCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "pdf",
		Description: "Fetch a transaction receipt and write it as a PDF document.",
		Usage:       "Writes Rootstock_Transaction_Receipt.pdf to the output directory.",
		Flags: []cli.Flag{
			hashFlag(),
			&cli.StringFlag{
				Name:  "out",
				Usage: "Directory where the document is written",
				Value: deps.OutputDir,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := deps.Receipts.Fetch(ctx, c.String("hash")); err != nil {
				return err
			}

			return exportPDF(deps, c.String("out"))
		},
	}
}

// qrCommand returns a CLI command that fetches a receipt and exports its QR code.
//
// Usage example:
//
//	rskreceipt qr --hash 0xABC123... --out receipt.png
func qrCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "qr",
		Description: "Fetch a transaction receipt and encode its summary as a QR code.",
		Usage:       "Writes a PNG when --out is given, otherwise prints the code to the terminal.",
		Flags: []cli.Flag{
			hashFlag(),
			&cli.StringFlag{
				Name:  "out",
				Usage: "PNG file to write",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if _, err := deps.Receipts.Fetch(ctx, c.String("hash")); err != nil {
				return err
			}

			return exportQR(deps, c.String("out"))
		},
	}
}
