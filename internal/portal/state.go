package portal

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/waveportal/internal/session"
	"github.com/gabapcia/waveportal/internal/wave"
)

// State is a snapshot of everything the client displays.
type State struct {
	Session session.Session
	Feed    wave.Feed
}

// Connected reports whether a wallet account has been adopted.
func (s State) Connected() bool {
	return s.Session.Connected()
}

// Account returns the adopted account, if any.
func (s State) Account() (common.Address, bool) {
	return s.Session.Account()
}

// WithSession returns a copy of s using sess.
func (s State) WithSession(sess session.Session) State {
	s.Session = sess
	return s
}

// WithFeed returns a copy of s using feed.
func (s State) WithFeed(feed wave.Feed) State {
	s.Feed = feed
	return s
}
