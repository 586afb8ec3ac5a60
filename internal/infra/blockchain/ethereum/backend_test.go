package ethereum

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

var errUnexpectedCall = errors.New("unexpected call")

// fakeBackend answers the calls the binding makes. Anything it does not
// override panics through the nil embedded interface.
type fakeBackend struct {
	bind.ContractBackend

	mu sync.Mutex

	outputs map[string][]byte // method name -> ABI encoded return data
	callErr error

	chainID     *big.Int
	blockNumber uint64
	blockErr    error

	logs      [][]types.Log // one entry consumed per FilterLogs call
	filterErr error
	queries   []goethereum.FilterQuery

	subscribeLogs []types.Log
	subscribeErr  error // returned by the subscription after the logs
	subscribed    bool

	receipts []receiptAnswer
	sent     []*types.Transaction
}

type receiptAnswer struct {
	receipt *types.Receipt
	err     error
}

var _ Backend = (*fakeBackend)(nil)

func (f *fakeBackend) CallContract(ctx context.Context, call goethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if f.callErr != nil {
		return nil, f.callErr
	}

	for name, method := range parsedABI.Methods {
		if len(call.Data) >= 4 && bytes.Equal(call.Data[:4], method.ID) {
			if out, ok := f.outputs[name]; ok {
				return out, nil
			}
		}
	}

	return nil, errUnexpectedCall
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(int64(f.blockNumber))}, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return f.chainID, nil
}

func (f *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.blockNumber, f.blockErr
}

func (f *fakeBackend) setBlockNumber(n uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.blockNumber = n
}

func (f *fakeBackend) FilterLogs(ctx context.Context, q goethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, q)
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	if len(f.logs) == 0 {
		return nil, nil
	}

	next := f.logs[0]
	f.logs = f.logs[1:]
	return next, nil
}

func (f *fakeBackend) filterQueries() []goethereum.FilterQuery {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]goethereum.FilterQuery(nil), f.queries...)
}

func (f *fakeBackend) SubscribeFilterLogs(ctx context.Context, q goethereum.FilterQuery, ch chan<- types.Log) (goethereum.Subscription, error) {
	f.mu.Lock()
	f.subscribed = true
	f.queries = append(f.queries, q)
	logs, subErr := f.subscribeLogs, f.subscribeErr
	f.mu.Unlock()

	return event.NewSubscription(func(quit <-chan struct{}) error {
		for _, l := range logs {
			select {
			case ch <- l:
			case <-quit:
				return nil
			}
		}
		if subErr != nil {
			return subErr
		}

		<-quit
		return nil
	}), nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.receipts) == 0 {
		return nil, goethereum.NotFound
	}

	next := f.receipts[0]
	if len(f.receipts) > 1 {
		f.receipts = f.receipts[1:]
	}
	return next.receipt, next.err
}

// newWaveLogFor builds a NewWave log as the node would return it.
func newWaveLogFor(address, from common.Address, seconds int64, message string, txHash common.Hash) types.Log {
	ev := parsedABI.Events[eventNewWave]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(seconds), message)
	if err != nil {
		panic(err)
	}

	return types.Log{
		Address: address,
		Topics:  []common.Hash{ev.ID, common.BytesToHash(from.Bytes())},
		Data:    data,
		TxHash:  txHash,
	}
}
