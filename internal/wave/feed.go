package wave

import (
	"slices"

	"github.com/gabapcia/waveportal/internal/pkg/types"
)

// Feed is the ordered sequence of waves on display, in arrival order.
//
// Feed is a value: every transition returns a new Feed and leaves the
// receiver untouched, so snapshots handed to a renderer never change under
// it. The zero value is an empty feed that has not been loaded yet.
//
// Live events that arrive before the first bulk load are buffered and merged
// when the load lands; after that, events are appended only if their ID has
// not been seen, so a wave observed by both paths is shown once.
type Feed struct {
	waves   []Wave
	seen    types.Set[ID]
	pending []Wave
	loaded  bool
}

// Load replaces the displayed sequence with waves (a bulk read), keeping
// every record, then appends buffered events the read does not contain.
func (f Feed) Load(waves []Wave) Feed {
	next := Feed{
		waves:  make([]Wave, 0, len(waves)+len(f.pending)),
		seen:   types.NewSet[ID](),
		loaded: true,
	}

	for _, w := range waves {
		next.waves = append(next.waves, w)
		next.seen.Add(w.ID())
	}
	for _, w := range f.pending {
		next.waves, next.seen = appendUnseen(next.waves, next.seen, w)
	}

	return next
}

// Receive applies one live event. Before the first Load it is buffered;
// afterwards it is appended to the end unless already present.
func (f Feed) Receive(w Wave) Feed {
	if !f.loaded {
		if slices.ContainsFunc(f.pending, func(p Wave) bool { return p.ID() == w.ID() }) {
			return f
		}

		f.pending = append(slices.Clip(f.pending), w)
		return f
	}

	if f.seen.Has(w.ID()) {
		return f
	}

	seen := f.seen.Clone()
	f.waves, f.seen = appendUnseen(slices.Clip(f.waves), seen, w)
	return f
}

// Flush moves buffered events into the sequence without a bulk read and
// marks the feed loaded, so later events append directly. It keeps live
// updates flowing when the bulk read fails.
func (f Feed) Flush() Feed {
	if f.loaded {
		return f
	}

	return f.Load(nil)
}

// appendUnseen appends w when its ID is not in seen. seen must be owned by
// the caller.
func appendUnseen(waves []Wave, seen types.Set[ID], w Wave) ([]Wave, types.Set[ID]) {
	id := w.ID()
	if seen.Has(id) {
		return waves, seen
	}

	seen.Add(id)
	return append(waves, w), seen
}

// Loaded reports whether a bulk load (or Flush) has happened.
func (f Feed) Loaded() bool {
	return f.loaded
}

// Len is the number of displayed waves. Buffered events are not counted.
func (f Feed) Len() int {
	return len(f.waves)
}

// Pending is the number of events buffered before the first load.
func (f Feed) Pending() int {
	return len(f.pending)
}

// Waves returns the displayed waves in arrival order.
func (f Feed) Waves() []Wave {
	return slices.Clone(f.waves)
}

// Recent returns the displayed waves most recent first, the order they are
// rendered in.
func (f Feed) Recent() []Wave {
	recent := slices.Clone(f.waves)
	slices.Reverse(recent)
	return recent
}
