package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/gabapcia/waveportal/internal/pkg/x/chflow"
	"github.com/gabapcia/waveportal/internal/portal"
	"github.com/gabapcia/waveportal/internal/wave"
)

// newWaveLog mirrors the NewWave event arguments for UnpackLog.
type newWaveLog struct {
	From      common.Address
	Timestamp *big.Int
	Message   string
}

// newWaveSubscription is the portal.Subscription handed out by WatchNewWave.
type newWaveSubscription struct {
	events    chan portal.NewWaveEvent
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

var _ portal.Subscription = (*newWaveSubscription)(nil)

func (s *newWaveSubscription) Events() <-chan portal.NewWaveEvent {
	return s.events
}

// Close stops the producer and waits for it to exit. Events is closed when
// Close returns.
func (s *newWaveSubscription) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}

// decodeNewWave converts a raw log into a NewWaveEvent. Logs that fail to
// decode become events carrying the error.
func (w *wavePortal) decodeNewWave(l types.Log) portal.NewWaveEvent {
	var out newWaveLog
	if err := w.contract.UnpackLog(&out, eventNewWave, l); err != nil {
		return portal.NewWaveEvent{Err: fmt.Errorf("decode %s log: %w", eventNewWave, err)}
	}

	return portal.NewWaveEvent{Wave: wave.FromEvent(out.From, out.Timestamp, out.Message, l.TxHash)}
}

// forwardLogs relays logs from an eth_subscribe subscription until ctx ends or
// the subscription fails. A failure is delivered as a final error event.
func (w *wavePortal) forwardLogs(ctx context.Context, logs <-chan types.Log, sub event.Subscription, events chan<- portal.NewWaveEvent) {
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-sub.Err():
			if err != nil {
				chflow.Send(ctx, events, portal.NewWaveEvent{Err: err})
			}
			return
		case l := <-logs:
			if l.Removed {
				continue
			}
			if !chflow.Send(ctx, events, w.decodeNewWave(l)) {
				return
			}
		}
	}
}

// newWaveQuery filters NewWave logs of the contract within [from, to].
func (w *wavePortal) newWaveQuery(from, to uint64) goethereum.FilterQuery {
	return goethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{w.address},
		Topics:    [][]common.Hash{{parsedABI.Events[eventNewWave].ID}},
	}
}

// pollNewWaves fetches the NewWave logs emitted from fromBlock up to the
// latest block and sends them to events in log order.
//
// When the latest block number cannot be read or the log query fails, an
// error event is sent and fromBlock is returned unchanged so the range is
// requested again on the next poll.
//
// Returns the first block of the next polling range (latest + 1).
func (w *wavePortal) pollNewWaves(ctx context.Context, fromBlock uint64, events chan<- portal.NewWaveEvent) uint64 {
	latestBlock, err := w.backend.BlockNumber(ctx)
	if err != nil {
		chflow.Send(ctx, events, portal.NewWaveEvent{Err: err})
		return fromBlock
	}

	if fromBlock > latestBlock {
		return fromBlock
	}

	logs, err := w.backend.FilterLogs(ctx, w.newWaveQuery(fromBlock, latestBlock))
	if err != nil {
		chflow.Send(ctx, events, portal.NewWaveEvent{Err: err})
		return fromBlock
	}

	for _, l := range logs {
		if l.Removed {
			continue
		}
		if !chflow.Send(ctx, events, w.decodeNewWave(l)) {
			break
		}
	}

	return latestBlock + 1
}

// pollLogs calls pollNewWaves every poll interval until ctx ends.
func (w *wavePortal) pollLogs(ctx context.Context, fromBlock uint64, events chan<- portal.NewWaveEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.pollInterval):
			fromBlock = w.pollNewWaves(ctx, fromBlock, events)
		}
	}
}

// WatchNewWave implements portal.Contract.
//
// With subscriptions enabled it opens an eth_subscribe log subscription;
// otherwise it polls eth_getLogs starting after the block that is latest at
// call time. Past events are never replayed.
func (w *wavePortal) WatchNewWave(ctx context.Context) (portal.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	sub := &newWaveSubscription{
		events: make(chan portal.NewWaveEvent, newWaveChannelBufferSize),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	var run func()
	if w.subscribe {
		logs, logSub, err := w.contract.WatchLogs(&bind.WatchOpts{Context: ctx}, eventNewWave)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("subscribe to %s: %w", eventNewWave, err)
		}

		run = func() { w.forwardLogs(ctx, logs, logSub, sub.events) }
	} else {
		latestBlock, err := w.backend.BlockNumber(ctx)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("get latest block: %w", err)
		}

		run = func() { w.pollLogs(ctx, latestBlock+1, sub.events) }
	}

	go func() {
		defer close(sub.done)
		defer close(sub.events)

		run()
	}()

	return sub, nil
}
