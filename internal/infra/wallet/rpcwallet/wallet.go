// Package rpcwallet implements session.Wallet over a JSON-RPC wallet endpoint:
// a node with managed accounts or a wallet bridge exposing eth_accounts,
// eth_requestAccounts and eth_signTransaction.
package rpcwallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/waveportal/internal/session"
)

// ErrSignerMismatch is returned when the endpoint signs with a different
// account than requested.
var ErrSignerMismatch = errors.New("transaction signed by an unexpected account")

const (
	methodAccounts        = "eth_accounts"
	methodRequestAccounts = "eth_requestAccounts"
	methodSignTransaction = "eth_signTransaction"
)

type wallet struct {
	conn jsonrpc.Client
}

var _ session.Wallet = (*wallet)(nil)

func (w *wallet) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := jsonrpc.Call(ctx, w.conn, &accounts, methodAccounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// RequestAccounts asks the endpoint to authorize accounts. Plain nodes do not
// know eth_requestAccounts; for them the managed accounts are returned.
func (w *wallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	err := jsonrpc.Call(ctx, w.conn, &accounts, methodRequestAccounts)
	if jsonrpc.IsMethodNotFound(err) {
		logger.Debug(ctx, "eth_requestAccounts not supported, falling back to eth_accounts")
		return w.Accounts(ctx)
	}
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// Transactor returns options whose signer delegates to eth_signTransaction.
// The signing request is bound to ctx.
func (w *wallet) Transactor(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if chainID == nil {
		return nil, bind.ErrNoChainID
	}

	return &bind.TransactOpts{
		From:    account,
		Context: ctx,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != account {
				return nil, bind.ErrNotAuthorized
			}

			return w.signTransaction(ctx, account, chainID, tx)
		},
	}, nil
}

// transactionArgs is the eth_signTransaction request object.
type transactionArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Nonce                hexutil.Uint64  `json:"nonce"`
	Data                 hexutil.Bytes   `json:"data"`
	ChainID              *hexutil.Big    `json:"chainId"`
}

func newTransactionArgs(from common.Address, chainID *big.Int, tx *types.Transaction) transactionArgs {
	args := transactionArgs{
		From:    from,
		To:      tx.To(),
		Gas:     hexutil.Uint64(tx.Gas()),
		Value:   (*hexutil.Big)(tx.Value()),
		Nonce:   hexutil.Uint64(tx.Nonce()),
		Data:    tx.Data(),
		ChainID: (*hexutil.Big)(chainID),
	}

	if tx.Type() == types.DynamicFeeTxType {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	}

	return args
}

// signTransactionResult accepts both answers seen in the wild: geth's
// {"raw": ..., "tx": ...} object and a bare raw transaction string.
type signTransactionResult struct {
	Raw hexutil.Bytes `json:"raw"`
}

func (r *signTransactionResult) UnmarshalJSON(data []byte) error {
	var raw hexutil.Bytes
	if err := json.Unmarshal(data, &raw); err == nil {
		r.Raw = raw
		return nil
	}

	type plain signTransactionResult
	return json.Unmarshal(data, (*plain)(r))
}

func (w *wallet) signTransaction(ctx context.Context, from common.Address, chainID *big.Int, tx *types.Transaction) (*types.Transaction, error) {
	var result signTransactionResult
	if err := jsonrpc.Call(ctx, w.conn, &result, methodSignTransaction, newTransactionArgs(from, chainID, tx)); err != nil {
		return nil, err
	}

	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(result.Raw); err != nil {
		return nil, fmt.Errorf("decode signed transaction: %w", err)
	}

	sender, err := types.Sender(types.LatestSignerForChainID(chainID), signed)
	if err != nil {
		return nil, fmt.Errorf("recover signer: %w", err)
	}
	if sender != from {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrSignerMismatch, sender.Hex(), from.Hex())
	}

	return signed, nil
}

// New creates a wallet talking to conn.
func New(conn jsonrpc.Client) *wallet {
	return &wallet{conn: conn}
}
