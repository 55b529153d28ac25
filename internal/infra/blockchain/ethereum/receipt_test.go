package ethereum

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	httpclient "github.com/gabapcia/rskreceipt/internal/pkg/transport/http"
	"github.com/gabapcia/rskreceipt/internal/pkg/transport/jsonrpc"
	jsonrpctest "github.com/gabapcia/rskreceipt/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gabapcia/rskreceipt/internal/pkg/types"
	"github.com/gabapcia/rskreceipt/internal/receipt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const transferReceipt = `{
	"transactionHash": "0xabc0000000000000000000000000000000000000000000000000000000000001",
	"transactionIndex": "0x0",
	"blockHash": "0xdef0000000000000000000000000000000000000000000000000000000000002",
	"blockNumber": "0x22b",
	"from": "0x1111111111111111111111111111111111111111",
	"to": "0x2222222222222222222222222222222222222222",
	"cumulativeGasUsed": "0x5208",
	"gasUsed": "0x5208",
	"contractAddress": null,
	"logs": [],
	"logsBloom": "0x00",
	"status": "0x1"
}`

const deploymentReceipt = `{
	"transactionHash": "0xabc0000000000000000000000000000000000000000000000000000000000003",
	"blockNumber": "0x10",
	"from": "0x1111111111111111111111111111111111111111",
	"to": null,
	"cumulativeGasUsed": "0x1e8480",
	"contractAddress": "0x3333333333333333333333333333333333333333",
	"status": "0x1"
}`

func TestClient_TransactionReceipt(t *testing.T) {
	id := receipt.Identifier{Hash: "0xabc"}

	t.Run("decodes a transfer receipt", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(json.RawMessage(transferReceipt), nil).
			Once()

		raw, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		require.NoError(t, err)

		assert.Equal(t, "0xabc0000000000000000000000000000000000000000000000000000000000001", raw.TransactionHash)
		assert.Equal(t, "0x1111111111111111111111111111111111111111", raw.From)
		assert.Equal(t, "0x2222222222222222222222222222222222222222", raw.To)
		assert.Empty(t, raw.ContractAddress)
		assert.Equal(t, types.QuantityFromUint64(21000), raw.CumulativeGasUsed)
		assert.Equal(t, types.QuantityFromUint64(555), raw.BlockNumber)
	})

	t.Run("decodes a contract deployment receipt", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(json.RawMessage(deploymentReceipt), nil).
			Once()

		raw, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		require.NoError(t, err)

		assert.Empty(t, raw.To)
		assert.Equal(t, "0x3333333333333333333333333333333333333333", raw.ContractAddress)
		assert.Equal(t, types.QuantityFromUint64(2000000), raw.CumulativeGasUsed)
	})

	t.Run("maps a null result to not found", func(t *testing.T) {
		for _, result := range []json.RawMessage{json.RawMessage("null"), json.RawMessage(" null "), nil} {
			conn := jsonrpctest.NewClient(t)
			conn.EXPECT().
				Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
				Return(result, nil).
				Once()

			_, err := NewClient(conn).TransactionReceipt(t.Context(), id)
			assert.ErrorIs(t, err, receipt.ErrNotFound)
		}
	})

	t.Run("returns transport errors unchanged", func(t *testing.T) {
		cause := errors.New("connection reset by peer")

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(nil, cause).
			Once()

		_, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		assert.Equal(t, cause, err)
	})

	t.Run("rejects quantities that are not hex", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(json.RawMessage(`{"blockNumber":"555","cumulativeGasUsed":"0x1"}`), nil).
			Once()

		_, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidQuantity)
	})

	t.Run("keeps wide values for the normalizer to reject", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(json.RawMessage(`{"blockNumber":"0x1","cumulativeGasUsed":"0x10000000000000000"}`), nil).
			Once()

		raw, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		require.NoError(t, err)

		_, err = receipt.Normalize(raw)
		assert.ErrorIs(t, err, receipt.ErrNumericOverflow)
	})

	t.Run("reports values wider than 256 bits as numeric overflow", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().
			Fetch(mock.Anything, "eth_getTransactionReceipt", "0xabc").
			Return(json.RawMessage(`{"blockNumber":"0x1","cumulativeGasUsed":"0x1`+strings.Repeat("0", 64)+`"}`), nil).
			Once()

		_, err := NewClient(conn).TransactionReceipt(t.Context(), id)
		require.ErrorIs(t, err, receipt.ErrNumericOverflow)
		assert.ErrorIs(t, err, types.ErrQuantityRange)
	})
}

func TestClient_TransactionReceipt_OverHTTP(t *testing.T) {
	t.Run("performs one request and surfaces provider errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32602,"message":"invalid transaction hash"}}`))
		}))
		defer server.Close()

		conn := jsonrpc.NewClient(httpclient.NewClient(), server.URL)

		_, err := NewClient(conn).TransactionReceipt(t.Context(), receipt.Identifier{Hash: "0x12"})
		require.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
		assert.Contains(t, err.Error(), "invalid transaction hash")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("reports not found for unknown hashes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":null}`))
		}))
		defer server.Close()

		conn := jsonrpc.NewClient(httpclient.NewClient(), server.URL)

		_, err := NewClient(conn).TransactionReceipt(t.Context(), receipt.Identifier{Hash: "0x12"})
		assert.ErrorIs(t, err, receipt.ErrNotFound)
	})
}
