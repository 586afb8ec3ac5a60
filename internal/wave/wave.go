// Package wave models the records shown by the portal and the feed that
// holds them.
package wave

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Raw is a wave exactly as the contract's getAllWaves returns it. Field
// names follow the on-chain tuple so ABI decoding can fill it directly.
type Raw struct {
	Waver     common.Address
	Message   string
	Timestamp *big.Int // seconds since the Unix epoch
}

// Wave is an immutable record of one submitted message.
type Wave struct {
	Sender    common.Address
	Timestamp time.Time   // on-chain seconds at millisecond resolution
	Message   string
	TxHash    common.Hash // zero for records read in bulk
}

// ID identifies a wave independently of how it was observed. Bulk reads do
// not carry transaction hashes, so the identity is derived from the fields
// both paths share: sender, timestamp and message.
type ID = common.Hash

// ID returns the wave's identity.
func (w Wave) ID() ID {
	var seconds [8]byte
	big.NewInt(w.Timestamp.Unix()).FillBytes(seconds[:])

	return crypto.Keccak256Hash(w.Sender.Bytes(), seconds[:], []byte(w.Message))
}

// fromSeconds scales an on-chain seconds value to a millisecond time.
func fromSeconds(seconds *big.Int) time.Time {
	if seconds == nil {
		return time.UnixMilli(0)
	}

	return time.UnixMilli(seconds.Int64() * 1000)
}

// FromRaw maps a bulk-read record.
func FromRaw(r Raw) Wave {
	return Wave{
		Sender:    r.Waver,
		Timestamp: fromSeconds(r.Timestamp),
		Message:   r.Message,
	}
}

// FromRawList maps a bulk read, preserving order.
func FromRawList(raws []Raw) []Wave {
	waves := make([]Wave, len(raws))
	for i, r := range raws {
		waves[i] = FromRaw(r)
	}

	return waves
}

// FromEvent maps a NewWave event payload.
func FromEvent(from common.Address, timestamp *big.Int, message string, txHash common.Hash) Wave {
	return Wave{
		Sender:    from,
		Timestamp: fromSeconds(timestamp),
		Message:   message,
		TxHash:    txHash,
	}
}
