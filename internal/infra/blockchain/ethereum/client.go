// Package ethereum implements receipt.Fetcher for Ethereum-compatible nodes,
// Rootstock included, using a JSON-RPC client.
package ethereum

import (
	"github.com/gabapcia/rskreceipt/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/rskreceipt/internal/receipt"
)

// client implements the receipt.Fetcher interface for Ethereum-based networks.
// It communicates with a node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// Ensure client implements the receipt.Fetcher interface at compile time.
var _ receipt.Fetcher = (*client)(nil)

// NewClient creates a new Ethereum blockchain client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
