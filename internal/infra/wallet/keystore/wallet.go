// Package keystore implements session.Wallet over a local go-ethereum
// keystore directory. An account counts as authorized once it is unlocked.
package keystore

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/waveportal/internal/pkg/logger"
	"github.com/gabapcia/waveportal/internal/pkg/types"
	"github.com/gabapcia/waveportal/internal/session"
)

// ErrLocked is returned when signing for an account that is not unlocked.
var ErrLocked = keystore.ErrLocked

type wallet struct {
	ks         *keystore.KeyStore
	passphrase string

	mu       sync.Mutex
	unlocked types.Set[common.Address]
}

var _ session.Wallet = (*wallet)(nil)

// Accounts returns the unlocked accounts in keystore order.
func (w *wallet) Accounts(ctx context.Context) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.unlockedLocked(), nil
}

// RequestAccounts unlocks the first keystore account with the configured
// passphrase when nothing is unlocked yet, then returns the unlocked accounts.
func (w *wallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if unlocked := w.unlockedLocked(); len(unlocked) > 0 {
		return unlocked, nil
	}

	all := w.ks.Accounts()
	if len(all) == 0 {
		return nil, nil
	}

	if err := w.unlockLocked(all[0]); err != nil {
		return nil, err
	}
	logger.Info(ctx, "keystore account unlocked", "wallet.account", all[0].Address.Hex())

	return w.unlockedLocked(), nil
}

func (w *wallet) Transactor(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	w.mu.Lock()
	isUnlocked := w.unlocked.Has(account)
	w.mu.Unlock()

	if !isUnlocked {
		return nil, fmt.Errorf("%s: %w", account.Hex(), ErrLocked)
	}

	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, accounts.Account{Address: account}, chainID)
	if err != nil {
		return nil, err
	}

	opts.Context = ctx
	return opts, nil
}

func (w *wallet) unlockLocked(account accounts.Account) error {
	if err := w.ks.Unlock(account, w.passphrase); err != nil {
		return fmt.Errorf("unlock %s: %w", account.Address.Hex(), err)
	}

	w.unlocked.Add(account.Address)
	return nil
}

func (w *wallet) unlockedLocked() []common.Address {
	var out []common.Address
	for _, account := range w.ks.Accounts() {
		if w.unlocked.Has(account.Address) {
			out = append(out, account.Address)
		}
	}

	return out
}

type config struct {
	unlockAll bool
	scryptN   int
	scryptP   int
}

type Option func(*config)

// New wraps ks. With WithUnlockAll every account is unlocked up front, so
// they are reported by Accounts without a Connect.
func New(ks *keystore.KeyStore, passphrase string, opts ...Option) (*wallet, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &wallet{
		ks:         ks,
		passphrase: passphrase,
		unlocked:   types.NewSet[common.Address](),
	}

	if cfg.unlockAll {
		for _, account := range ks.Accounts() {
			if err := w.unlockLocked(account); err != nil {
				return nil, err
			}
		}
	}

	return w, nil
}

// Open creates a wallet over the keystore directory dir. Defaults to the
// standard scrypt parameters.
func Open(dir, passphrase string, opts ...Option) (*wallet, error) {
	cfg := config{
		scryptN: keystore.StandardScryptN,
		scryptP: keystore.StandardScryptP,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return New(keystore.NewKeyStore(dir, cfg.scryptN, cfg.scryptP), passphrase, opts...)
}

// WithUnlockAll unlocks every keystore account when the wallet is created.
func WithUnlockAll(enabled bool) Option {
	return func(c *config) {
		c.unlockAll = enabled
	}
}

// WithScrypt sets the scrypt cost parameters used for new keys.
func WithScrypt(n, p int) Option {
	return func(c *config) {
		c.scryptN = n
		c.scryptP = p
	}
}
