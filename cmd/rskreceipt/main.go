package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/rskreceipt/internal/config"
	"github.com/gabapcia/rskreceipt/internal/document"
	"github.com/gabapcia/rskreceipt/internal/handlers/cli"
	"github.com/gabapcia/rskreceipt/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/rskreceipt/internal/pkg/logger"
	"github.com/gabapcia/rskreceipt/internal/pkg/telemetry"
	"github.com/gabapcia/rskreceipt/internal/pkg/transport/http"
	"github.com/gabapcia/rskreceipt/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/rskreceipt/internal/receipt"
	"github.com/gabapcia/rskreceipt/internal/summary"
)

func telemetryOptions(cfg config.Telemetry) []telemetry.Option {
	var opts []telemetry.Option
	if cfg.Endpoint != "" {
		opts = append(opts, telemetry.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, telemetry.WithInsecure())
	}
	return opts
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName, telemetryOptions(cfg.Telemetry)...)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	conn := jsonrpc.NewClient(http.NewClient(http.WithTimeout(cfg.RPCTimeout)), cfg.RPCEndpoint)

	return cli.Run(ctx, cli.Dependencies{
		Receipts:  receipt.New(ethereum.NewClient(conn)),
		Documents: document.New(),
		Summaries: summary.New(summary.WithSize(cfg.QRSize)),
		OutputDir: cfg.OutputDir,
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
