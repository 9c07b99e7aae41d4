package comm

import "sort"

// core is the state shared by every rank bound to one communicator: the
// global rank numbers that are members (sorted, usually but not necessarily
// contiguous) and the rendezvous hub those members collectivize through.
type core struct {
	globalRanks []int
	h           *hub
}

// Comm is a per-rank handle onto a communicator. Every rank that is a member
// of the same communicator holds a Comm sharing the same *core but a
// distinct local index, mirroring MPI_Comm semantics where each process
// owns its own handle but they all name the same group.
type Comm struct {
	c     *core
	local int // index of this rank within c.globalRanks
}

// Size returns the number of ranks in this communicator, or 0 for the zero
// Comm a rank receives when Split excludes it.
func (cm Comm) Size() int {
	if cm.c == nil {
		return 0
	}
	return len(cm.c.globalRanks)
}

// Rank returns this handle's local rank within the communicator, in
// [0, Size()).
func (cm Comm) Rank() int { return cm.local }

// GlobalRank returns the world-numbered rank this handle corresponds to.
func (cm Comm) GlobalRank() int { return cm.c.globalRanks[cm.local] }

// GlobalRanks returns the sorted world ranks that are members of this
// communicator. The returned slice must not be mutated.
func (cm Comm) GlobalRanks() []int { return cm.c.globalRanks }

// newCore builds a communicator core over the given (sorted, deduplicated)
// global ranks.
func newCore(globalRanks []int) *core {
	ranks := append([]int(nil), globalRanks...)
	sort.Ints(ranks)
	return &core{globalRanks: ranks, h: newHub(len(ranks))}
}

// handleFor returns the Comm handle a given global rank should use to act
// as a member of this core, or (Comm{}, false) if that rank is not a member.
func (c *core) handleFor(globalRank int) (Comm, bool) {
	for i, r := range c.globalRanks {
		if r == globalRank {
			return Comm{c: c, local: i}, true
		}
	}
	return Comm{}, false
}

// Split partitions this communicator into sub-communicators by color: every
// rank sharing the same color ends up in the same sub-communicator. Unlike
// MPI_Comm_split, key does not decide the order: like every communicator
// here, the sub-communicator numbers its members by ascending world rank.
// Ranks with color < 0 are excluded (receive the zero Comm).
//
// Split is a collective: every rank of cm must call it, with argument
// vectors that are consistent across ranks (same set of (color, key) pairs
// modulo each rank's own color/key). Because this runtime simulates ranks as
// independent goroutines without a side-channel, Split is implemented as an
// AllGather of (localRank, color, key) followed by pure local computation,
// so every rank derives an identical partition without further messages.
func (cm Comm) Split(color, key int) Comm {
	type entry struct {
		local, color, key int
	}
	raw := cm.allgather(entry{cm.local, color, key})
	entries := make([]entry, len(raw))
	for i, v := range raw {
		entries[i] = v.(entry)
	}

	if color < 0 {
		// This rank excludes itself; it still had to participate in the
		// allgather above so ranks that DO belong to a group can complete
		// their own Split call, but it receives the zero value.
		return Comm{}
	}

	var mine []entry
	for _, e := range entries {
		if e.color == color {
			mine = append(mine, e)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].key != mine[j].key {
			return mine[i].key < mine[j].key
		}
		return mine[i].local < mine[j].local
	})

	globalRanks := make([]int, len(mine))
	myLocal := -1
	for i, e := range mine {
		globalRanks[i] = cm.c.globalRanks[e.local]
		if e.local == cm.local {
			myLocal = i
		}
	}
	sub := newCore(globalRanks)
	// newCore re-sorts by global rank; recompute myLocal against the sorted order.
	for i, r := range sub.globalRanks {
		if r == cm.c.globalRanks[mine[myLocal].local] {
			myLocal = i
			break
		}
	}
	return Comm{c: sub, local: myLocal}
}

func (cm Comm) allgather(payload any) []any {
	res := cm.c.h.rendezvous(cm.local, payload, func(payloads []any) any {
		out := make([]any, len(payloads))
		copy(out, payloads)
		return out
	})
	return res.([]any)
}
