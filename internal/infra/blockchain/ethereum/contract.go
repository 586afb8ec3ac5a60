// Package ethereum binds the WavePortal contract through go-ethereum and
// implements portal.Contract on top of any ethclient-compatible backend.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/waveportal/internal/pkg/resilience/retry"
	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/wave"
)

const (
	// DefaultAddress is the deployed WavePortal contract.
	DefaultAddress = "0xEe1C3c1b2757eDA0723cC9b289816d2E77AE2488"

	// averageBlockTime is the expected time between blocks.
	averageBlockTime = 12 * time.Second

	// newWaveChannelBufferSize bounds events waiting for the consumer.
	newWaveChannelBufferSize = 16
)

// Backend is what the binding needs from a node connection.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.ContractBackend

	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// wavePortal implements portal.Contract for a single deployed contract.
type wavePortal struct {
	address  common.Address
	backend  Backend
	contract *bind.BoundContract

	subscribe    bool          // use eth_subscribe instead of polling eth_getLogs
	pollInterval time.Duration // delay between eth_getLogs polls
	receiptRetry retry.Retry   // drives eth_getTransactionReceipt polling
}

var _ portal.Contract = (*wavePortal)(nil)

func (w *wavePortal) GetAllWaves(ctx context.Context) ([]wave.Raw, error) {
	var out []any
	if err := w.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetAllWaves); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}

	raws := *abi.ConvertType(out[0], new([]wave.Raw)).(*[]wave.Raw)
	return raws, nil
}

func (w *wavePortal) GetTotalWaves(ctx context.Context) (*big.Int, error) {
	var out []any
	if err := w.contract.Call(&bind.CallOpts{Context: ctx}, &out, methodGetTotalWaves); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: empty result", methodGetTotalWaves)
	}

	total := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return total, nil
}

func (w *wavePortal) Wave(opts *bind.TransactOpts, message string) (*types.Transaction, error) {
	return w.contract.Transact(opts, methodWave, message)
}

// WaitMined polls for the receipt of tx until it exists, the retry attempts
// run out or ctx ends. Only "not found" answers are retried.
func (w *wavePortal) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := w.receiptRetry.Execute(ctx, func() error {
		r, err := w.backend.TransactionReceipt(ctx, tx.Hash())
		if err != nil {
			return err
		}

		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (w *wavePortal) ChainID(ctx context.Context) (*big.Int, error) {
	return w.backend.ChainID(ctx)
}

func isReceiptPending(err error) bool {
	return errors.Is(err, goethereum.NotFound)
}

type config struct {
	subscribe       bool
	pollInterval    time.Duration
	receiptAttempts uint
	receiptDelay    time.Duration
}

type Option func(*config)

// New binds the contract at address on backend. Defaults:
//   - subscribe:       false (poll eth_getLogs)
//   - pollInterval:    12 seconds
//   - receiptAttempts: 0 (until the context ends)
//   - receiptDelay:    1 second, growing up to pollInterval
func New(backend Backend, address common.Address, opts ...Option) *wavePortal {
	cfg := config{
		pollInterval:    averageBlockTime,
		receiptAttempts: 0,
		receiptDelay:    1 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &wavePortal{
		address:      address,
		backend:      backend,
		contract:     bind.NewBoundContract(address, parsedABI, backend, backend, backend),
		subscribe:    cfg.subscribe,
		pollInterval: cfg.pollInterval,
		receiptRetry: retry.New(
			retry.WithAttempts(cfg.receiptAttempts),
			retry.WithDelay(cfg.receiptDelay),
			retry.WithMaxDelay(max(cfg.receiptDelay, cfg.pollInterval)),
			retry.WithRetryIf(isReceiptPending),
		),
	}
}

// WithSubscriptions makes WatchNewWave use eth_subscribe. The backend must be
// connected over a transport that supports notifications (WebSocket, IPC).
func WithSubscriptions(enabled bool) Option {
	return func(c *config) {
		c.subscribe = enabled
	}
}

// WithPollInterval sets the delay between eth_getLogs polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithReceiptAttempts caps how many times a receipt is requested. Zero keeps
// asking until the context ends.
func WithReceiptAttempts(n uint) Option {
	return func(c *config) {
		c.receiptAttempts = n
	}
}

// WithReceiptDelay sets the first delay between receipt requests.
func WithReceiptDelay(d time.Duration) Option {
	return func(c *config) {
		c.receiptDelay = d
	}
}
