package portal

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/pkg/x/chflow"
	"github.com/gabapcia/waveportal/internal/session"
	"github.com/gabapcia/waveportal/internal/wave"
)

const instrumentationName = "github.com/gabapcia/waveportal/internal/portal"

// DefaultGasLimit is the gas ceiling attached to every wave transaction.
const DefaultGasLimit uint64 = 300000

var (
	// ErrNoWallet is returned when no wallet or provider is configured.
	ErrNoWallet = session.ErrNoWallet

	// ErrNotConnected is returned by SubmitWave before an account is adopted.
	ErrNotConnected = errors.New("no account connected")

	// ErrAlreadyMounted is returned by Mount while a previous Mount is active.
	ErrAlreadyMounted = errors.New("portal already mounted")

	// ErrMountCancelled is returned by Mount when Unmount runs before the
	// subscription is in place.
	ErrMountCancelled = errors.New("mount cancelled by unmount")

	// ErrTransactionReverted is returned when a wave transaction is mined
	// with a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")
)

// Submission describes a mined wave transaction.
type Submission struct {
	TxHash      common.Hash
	BlockNumber *big.Int
	TotalBefore *big.Int
	TotalAfter  *big.Int
}

type Service interface {
	// CheckExistingAuthorization adopts the first account the wallet has
	// already authorized.
	CheckExistingAuthorization(ctx context.Context) (State, error)

	// Connect asks the wallet for authorization and adopts the first
	// account returned. The state is left as is on error.
	Connect(ctx context.Context) (State, error)

	// LoadAllWaves replaces the displayed sequence with the contract
	// history.
	LoadAllWaves(ctx context.Context) (State, error)

	// TotalWaves reads the contract's wave counter.
	TotalWaves(ctx context.Context) (*big.Int, error)

	// SubmitWave sends a wave from the connected account and waits until it
	// is mined. The displayed sequence is not touched; the wave shows up
	// through the NewWave subscription.
	SubmitWave(ctx context.Context, message string) (Submission, error)

	// Mount subscribes to NewWave events and runs the initial history load.
	// Events received before the load completes are merged into it by ID.
	// The returned channel carries state snapshots, latest wins, and is
	// closed by Unmount. An Unmount racing the subscription makes Mount
	// return ErrMountCancelled.
	Mount(ctx context.Context) (<-chan State, error)

	// Unmount closes the subscription opened by Mount. No event is applied
	// after it returns.
	Unmount()

	// State returns the current snapshot.
	State() State
}

type closeFunc func()

type mountPhase int

const (
	phaseIdle mountPhase = iota
	phaseMounting
	phaseMounted
	phaseUnmounting
)

type service struct {
	mu         sync.Mutex
	state      State
	phase      mountPhase
	generation uint64
	updates    chan State
	closeFunc  closeFunc
	workers    sync.WaitGroup

	sessions session.Service
	wallet   session.Wallet
	contract Contract
	gasLimit uint64

	tracer        trace.Tracer
	wavesReceived metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) CheckExistingAuthorization(ctx context.Context) (State, error) {
	ctx, span := s.tracer.Start(ctx, "portal.CheckExistingAuthorization")
	defer span.End()

	current := s.State()
	next, err := s.sessions.CheckExistingAuthorization(ctx, current.Session)
	if err != nil {
		recordError(span, err)
		return current, err
	}

	account, _ := next.Account()
	logger.Info(ctx, "found an authorized account", "wallet.account", account.Hex())

	return s.adoptSession(next), nil
}

func (s *service) Connect(ctx context.Context) (State, error) {
	ctx, span := s.tracer.Start(ctx, "portal.Connect")
	defer span.End()

	current := s.State()
	next, err := s.sessions.Connect(ctx, current.Session)
	if err != nil {
		recordError(span, err)
		return current, err
	}

	account, _ := next.Account()
	logger.Info(ctx, "wallet connected", "wallet.account", account.Hex())

	return s.adoptSession(next), nil
}

func (s *service) adoptSession(sess session.Session) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.WithSession(sess)
	s.publishLocked()
	return s.state
}

func (s *service) fetchAllWaves(ctx context.Context) ([]wave.Wave, error) {
	if s.contract == nil {
		return nil, ErrNoWallet
	}

	raws, err := s.contract.GetAllWaves(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all waves: %w", err)
	}

	return wave.FromRawList(raws), nil
}

func (s *service) LoadAllWaves(ctx context.Context) (State, error) {
	ctx, span := s.tracer.Start(ctx, "portal.LoadAllWaves")
	defer span.End()

	waves, err := s.fetchAllWaves(ctx)
	if err != nil {
		recordError(span, err)
		return s.State(), err
	}
	span.SetAttributes(attribute.Int("waves.count", len(waves)))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.WithFeed(s.state.Feed.Load(waves))
	s.publishLocked()
	return s.state, nil
}

func (s *service) TotalWaves(ctx context.Context) (*big.Int, error) {
	ctx, span := s.tracer.Start(ctx, "portal.TotalWaves")
	defer span.End()

	if s.contract == nil {
		return nil, ErrNoWallet
	}

	total, err := s.contract.GetTotalWaves(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("get total waves: %w", err)
	}

	return total, nil
}

func (s *service) SubmitWave(ctx context.Context, message string) (Submission, error) {
	ctx, span := s.tracer.Start(ctx, "portal.SubmitWave")
	defer span.End()

	submission, err := s.submitWave(ctx, message)
	if err != nil {
		recordError(span, err)
		return Submission{}, err
	}

	span.SetAttributes(attribute.String("tx.hash", submission.TxHash.Hex()))
	return submission, nil
}

func (s *service) submitWave(ctx context.Context, message string) (Submission, error) {
	if s.wallet == nil || s.contract == nil {
		return Submission{}, ErrNoWallet
	}

	account, ok := s.State().Account()
	if !ok {
		return Submission{}, ErrNotConnected
	}

	chainID, err := s.contract.ChainID(ctx)
	if err != nil {
		return Submission{}, fmt.Errorf("get chain id: %w", err)
	}

	opts, err := s.wallet.Transactor(ctx, account, chainID)
	if err != nil {
		return Submission{}, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx
	opts.GasLimit = s.gasLimit

	before, err := s.contract.GetTotalWaves(ctx)
	if err != nil {
		return Submission{}, fmt.Errorf("get total waves: %w", err)
	}
	logger.Info(ctx, "retrieved total wave count", "waves.total", before.String())

	tx, err := s.contract.Wave(opts, message)
	if err != nil {
		return Submission{}, fmt.Errorf("send wave: %w", err)
	}

	ctx = logger.Derive(ctx, "tx.hash", tx.Hash().Hex())
	logger.Info(ctx, "mining")

	receipt, err := s.contract.WaitMined(ctx, tx)
	if err != nil {
		return Submission{}, fmt.Errorf("wait mined: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return Submission{}, ErrTransactionReverted
	}
	logger.Info(ctx, "mined", "tx.block", receipt.BlockNumber.String())

	after, err := s.contract.GetTotalWaves(ctx)
	if err != nil {
		return Submission{}, fmt.Errorf("get total waves: %w", err)
	}
	logger.Info(ctx, "retrieved total wave count", "waves.total", after.String())

	return Submission{
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber,
		TotalBefore: before,
		TotalAfter:  after,
	}, nil
}

func (s *service) Mount(ctx context.Context) (<-chan State, error) {
	generation, err := s.beginMount()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := s.subscribe(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseMounting || s.generation != generation {
		cancel()
		if sub != nil {
			sub.Close()
		}
		return nil, ErrMountCancelled
	}

	updates := make(chan State, 1)
	s.updates = updates
	s.closeFunc = func() {
		cancel()
		if sub != nil {
			sub.Close()
		}
		close(updates)
	}
	s.phase = phaseMounted

	if sub != nil {
		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			s.consumeNewWaves(ctx, generation, sub)
		}()
	}

	s.workers.Add(1)
	go func() {
		defer s.workers.Done()
		s.initialLoad(ctx, generation)
	}()

	s.publishLocked()
	return updates, nil
}

// beginMount reserves the mount for the caller. The subscription is opened
// afterwards without holding the lock.
func (s *service) beginMount() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != phaseIdle {
		return 0, ErrAlreadyMounted
	}

	s.phase = phaseMounting
	s.generation++
	return s.generation, nil
}

func (s *service) subscribe(ctx context.Context) Subscription {
	if s.contract == nil {
		return nil
	}

	sub, err := s.contract.WatchNewWave(ctx)
	if err != nil {
		logger.Error(ctx, "failed to subscribe to new waves", "error", err)
		return nil
	}

	return sub
}

func (s *service) initialLoad(ctx context.Context, generation uint64) {
	ctx, span := s.tracer.Start(ctx, "portal.initialLoad")
	defer span.End()

	waves, err := s.fetchAllWaves(ctx)
	if err != nil {
		recordError(span, err)
		logger.Error(ctx, "failed to load waves", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(generation) {
		return
	}

	feed := s.state.Feed
	if err != nil {
		feed = feed.Flush()
	} else {
		feed = feed.Load(waves)
	}

	s.state = s.state.WithFeed(feed)
	s.publishLocked()
}

func (s *service) consumeNewWaves(ctx context.Context, generation uint64, sub Subscription) {
	for {
		event, ok := chflow.Receive(ctx, sub.Events())
		if !ok {
			return
		}

		if event.Err != nil {
			logger.Error(ctx, "new wave subscription error", "error", event.Err)
			continue
		}

		if !s.applyNewWave(ctx, generation, event.Wave) {
			return
		}
	}
}

func (s *service) applyNewWave(ctx context.Context, generation uint64, w wave.Wave) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isCurrentLocked(generation) {
		return false
	}

	logger.Debug(ctx, "new wave",
		"wave.sender", w.Sender.Hex(),
		"wave.timestamp", w.Timestamp.Unix(),
		"wave.message", w.Message,
	)
	s.wavesReceived.Add(ctx, 1)

	s.state = s.state.WithFeed(s.state.Feed.Receive(w))
	s.publishLocked()
	return true
}

func (s *service) Unmount() {
	s.mu.Lock()
	switch s.phase {
	case phaseIdle:
		s.mu.Unlock()
		return
	case phaseMounting:
		// The pending Mount sees the new generation and backs out.
		s.phase = phaseIdle
		s.generation++
		s.mu.Unlock()
		return
	case phaseMounted:
		s.closeFunc()
		s.closeFunc = nil
		s.updates = nil
		s.phase = phaseUnmounting
	}
	s.mu.Unlock()

	s.workers.Wait()

	s.mu.Lock()
	if s.phase == phaseUnmounting {
		s.phase = phaseIdle
	}
	s.mu.Unlock()
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *service) isCurrentLocked(generation uint64) bool {
	return s.phase == phaseMounted && s.generation == generation
}

func (s *service) publishLocked() {
	if s.updates != nil {
		chflow.Replace(s.updates, s.state)
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

type config struct {
	gasLimit uint64
}

type Option func(*config)

// New creates a Service. wallet and contract may be nil when no provider is
// configured; operations that need them then return ErrNoWallet.
func New(wallet session.Wallet, contract Contract, opts ...Option) *service {
	cfg := config{
		gasLimit: DefaultGasLimit,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)
	wavesReceived, err := meter.Int64Counter("waveportal.waves.received",
		metric.WithDescription("NewWave events delivered by the subscription"),
	)
	if err != nil {
		otel.Handle(err)
		wavesReceived = noop.Int64Counter{}
	}

	return &service{
		sessions:      session.New(wallet),
		wallet:        wallet,
		contract:      contract,
		gasLimit:      cfg.gasLimit,
		tracer:        otel.Tracer(instrumentationName),
		wavesReceived: wavesReceived,
	}
}

func WithGasLimit(limit uint64) Option {
	return func(c *config) {
		c.gasLimit = limit
	}
}
