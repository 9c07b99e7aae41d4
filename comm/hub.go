package comm

import "sync"

// hub is a generation-counted rendezvous barrier shared by every rank bound
// to one Comm. Each collective call deposits a payload into the hub, blocks
// until the last rank of the generation arrives, then one arrival (whichever
// rank happens to observe the full house) combines the payloads and wakes
// everyone with the shared result.
//
// This plays the role a real MPI implementation's collective matching
// engine plays: ranks may call in arbitrary goroutine-scheduling order, but
// the hub only resolves once every rank of the communicator has checked in,
// so no rank ever observes a partial round.
type hub struct {
	mu       sync.Mutex
	cond     *sync.Cond
	size     int
	gen      int
	arrived  int
	payloads []any
	result   any
}

func newHub(size int) *hub {
	h := &hub{size: size, payloads: make([]any, size)}
	h.cond = sync.NewCond(&h.mu)
	return h
}

// rendezvous deposits payload at localRank's slot, waits for every local
// rank to arrive, then returns combine(payloads) to every caller of this
// generation. combine is invoked exactly once per generation, by whichever
// goroutine happens to be the last to arrive.
func (h *hub) rendezvous(localRank int, payload any, combine func(payloads []any) any) any {
	h.mu.Lock()
	myGen := h.gen
	h.payloads[localRank] = payload
	h.arrived++
	if h.arrived == h.size {
		h.result = combine(h.payloads)
		h.arrived = 0
		h.payloads = make([]any, h.size)
		h.gen++
		h.cond.Broadcast()
	} else {
		for h.gen == myGen {
			h.cond.Wait()
		}
	}
	result := h.result
	h.mu.Unlock()
	return result
}
