package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/rskreceipt/internal/pkg/x/chflow"
	"github.com/gabapcia/rskreceipt/internal/receipt"

	"github.com/urfave/cli/v3"
)

const sessionHelp = `Commands:
  fetch <hash>    look up a transaction receipt
  show            print the current receipt
  pdf [dir]       write the PDF document of the current receipt
  qr [file]       write the QR code as PNG, or print it when no file is given
  copy <field>    print a single raw value (hash, from, to, contract, gas, block)
  help            show this message
  quit            leave the session
`

// sessionCommand returns a CLI command that runs an interactive session.
//
// Usage example:
//
//	rskreceipt session
//
// The session ends on "quit", at the end of input, or when ctx is canceled.
// A failure while reading input ends it with an error.
func sessionCommand(deps Dependencies) *cli.Command {
	return &cli.Command{
		Name:        "session",
		Description: "Interactive session that keeps the last fetched receipt and exports it on demand.",
		Usage:       "Reads commands from standard input. Type help for the list of commands.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runSession(ctx, deps)
		},
	}
}

func runSession(ctx context.Context, deps Dependencies) error {
	lines, errs := chflow.ScanLines(ctx, deps.Stdin)

	fmt.Fprint(deps.Stdout, sessionHelp)
	for {
		fmt.Fprint(deps.Stdout, "> ")

		line, ok := chflow.Receive(ctx, lines)
		if !ok {
			if ctx.Err() != nil {
				return nil
			}
			if err := <-errs; err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)

		if name == "quit" || name == "exit" {
			return nil
		}

		if err := dispatch(ctx, deps, name, arg); err != nil {
			fmt.Fprintf(deps.Stdout, "error: %s\n", err)
		}
	}
}

func dispatch(ctx context.Context, deps Dependencies, name, arg string) error {
	switch name {
	case "":
		return nil
	case "help":
		fmt.Fprint(deps.Stdout, sessionHelp)
		return nil
	case "fetch":
		fmt.Fprintln(deps.Stdout, "loading...")

		r, err := deps.Receipts.Fetch(ctx, arg)
		if err != nil {
			return err
		}

		printReceipt(deps.Stdout, r)
		return nil
	case "show":
		return showState(deps)
	case "pdf":
		dir := arg
		if dir == "" {
			dir = deps.OutputDir
		}
		return exportPDF(deps, dir)
	case "qr":
		return exportQR(deps, arg)
	case "copy":
		return copyField(deps, arg)
	default:
		return fmt.Errorf("unknown command %q, type help for the list of commands", name)
	}
}

func showState(deps Dependencies) error {
	state := deps.Receipts.State()

	switch state.Status {
	case receipt.StatusReady:
		printReceipt(deps.Stdout, state.Receipt)
		return nil
	case receipt.StatusFailed:
		return state.Err
	case receipt.StatusLoading:
		fmt.Fprintln(deps.Stdout, "loading...")
		return nil
	default:
		return errNoReceipt
	}
}

// copyField prints the raw value of a single field so it can be piped or
// pasted elsewhere.
func copyField(deps Dependencies, key string) error {
	kind, err := receipt.ParseFieldKind(key)
	if err != nil {
		return err
	}

	r := current(deps.Receipts)
	if r == nil {
		return errNoReceipt
	}

	value, ok := receipt.Lookup(*r, kind)
	if !ok {
		return fmt.Errorf("%s is not present in this receipt", kind.Label())
	}

	fmt.Fprintln(deps.Stdout, value)
	return nil
}
