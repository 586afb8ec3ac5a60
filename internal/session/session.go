// Package session tracks which wallet account the user is acting as.
//
// A Session moves one way, from disconnected to connected, and is never
// cleared. Transitions take the prior Session and return the next one, so
// callers own where the value lives.
package session

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrNoWallet is returned when no wallet provider is configured.
	ErrNoWallet = errors.New("no wallet present")

	// ErrNoAuthorizedAccount is returned when the wallet reports no account.
	ErrNoAuthorizedAccount = errors.New("no authorized account found")
)

// Wallet is the external provider managing keys and signing.
type Wallet interface {
	// Accounts lists accounts already authorized for this client, without
	// prompting the user.
	Accounts(ctx context.Context) ([]common.Address, error)

	// RequestAccounts asks the user to authorize accounts and returns them.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// Transactor returns options that sign transactions from account on the
	// chain identified by chainID.
	Transactor(ctx context.Context, account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}

// Session is the connected account, if any.
type Session struct {
	account   common.Address
	connected bool
}

// Account returns the adopted account and whether there is one.
func (s Session) Account() (common.Address, bool) {
	return s.account, s.connected
}

// Connected reports whether an account has been adopted.
func (s Session) Connected() bool {
	return s.connected
}

// Adopt returns a Session bound to account.
func (s Session) Adopt(account common.Address) Session {
	return Session{account: account, connected: true}
}

// Service runs the wallet interactions that move a Session forward.
type Service interface {
	// CheckExistingAuthorization adopts the first already-authorized account.
	//
	// Returns ErrNoWallet without a wallet and ErrNoAuthorizedAccount when
	// the wallet reports none; s is returned unchanged in both cases.
	CheckExistingAuthorization(ctx context.Context, s Session) (Session, error)

	// Connect asks the wallet for authorization and adopts the first account
	// returned.
	//
	// Returns ErrNoWallet without a wallet; s is returned unchanged on error.
	// Concurrent calls each reach the wallet.
	Connect(ctx context.Context, s Session) (Session, error)
}

type service struct {
	wallet Wallet
}

var _ Service = (*service)(nil)

func (svc *service) CheckExistingAuthorization(ctx context.Context, s Session) (Session, error) {
	if svc.wallet == nil {
		return s, ErrNoWallet
	}

	accounts, err := svc.wallet.Accounts(ctx)
	if err != nil {
		return s, err
	}

	return adoptFirst(s, accounts)
}

func (svc *service) Connect(ctx context.Context, s Session) (Session, error) {
	if svc.wallet == nil {
		return s, ErrNoWallet
	}

	accounts, err := svc.wallet.RequestAccounts(ctx)
	if err != nil {
		return s, err
	}

	return adoptFirst(s, accounts)
}

func adoptFirst(s Session, accounts []common.Address) (Session, error) {
	if len(accounts) == 0 {
		return s, ErrNoAuthorizedAccount
	}

	return s.Adopt(accounts[0]), nil
}

// New creates a Service. wallet may be nil, meaning no wallet is present.
func New(wallet Wallet) *service {
	return &service{wallet: wallet}
}
