package portal

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/waveportal/internal/wave"
)

// NewWaveEvent is one delivery from a NewWave subscription.
// Exactly one of Wave or Err is meaningful.
type NewWaveEvent struct {
	Wave wave.Wave
	Err  error
}

// Subscription is a live feed of NewWave events.
//
// Events is closed once the subscription ends, either through Close or
// because the underlying stream failed for good. Close is idempotent.
type Subscription interface {
	Events() <-chan NewWaveEvent
	Close()
}

// Contract is the WavePortal contract as seen by the client.
type Contract interface {
	// GetAllWaves reads the full wave history in contract order.
	GetAllWaves(ctx context.Context) ([]wave.Raw, error)

	// GetTotalWaves reads the contract's wave counter.
	GetTotalWaves(ctx context.Context) (*big.Int, error)

	// Wave sends the wave(message) transaction signed through opts.
	Wave(opts *bind.TransactOpts, message string) (*types.Transaction, error)

	// WaitMined blocks until tx has a receipt or ctx ends.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// WatchNewWave subscribes to NewWave events emitted from now on.
	WatchNewWave(ctx context.Context) (Subscription, error)

	// ChainID returns the chain the contract lives on.
	ChainID(ctx context.Context) (*big.Int, error)
}
