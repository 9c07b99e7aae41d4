package comm

// Barrier blocks until every rank of cm has called Barrier, matching the
// suspension-point semantics the concurrency model requires of every
// collective.
func (cm Comm) Barrier() {
	cm.c.h.rendezvous(cm.local, nil, func([]any) any { return nil })
}

// Broadcast sends root's value to every rank of cm and returns it. Every
// rank must pass the same root; only root's value argument is used.
func Broadcast[T any](cm Comm, root int, value T) T {
	res := cm.c.h.rendezvous(cm.local, value, func(payloads []any) any {
		return payloads[root]
	})
	return res.(T)
}

// AllReduceSum sums value across every rank of cm and returns the total to
// all ranks.
func AllReduceSum[T int | int64 | float64 | complex128](cm Comm, value T) T {
	res := cm.c.h.rendezvous(cm.local, value, func(payloads []any) any {
		var sum T
		for _, p := range payloads {
			sum += p.(T)
		}
		return sum
	})
	return res.(T)
}

// AllReduceMin reduces value to its minimum across every rank of cm.
func AllReduceMin[T int | int64 | float64](cm Comm, value T) T {
	res := cm.c.h.rendezvous(cm.local, value, func(payloads []any) any {
		m := payloads[0].(T)
		for _, p := range payloads[1:] {
			if v := p.(T); v < m {
				m = v
			}
		}
		return m
	})
	return res.(T)
}

// AllReduceMax reduces value to its maximum across every rank of cm.
func AllReduceMax[T int | int64 | float64](cm Comm, value T) T {
	res := cm.c.h.rendezvous(cm.local, value, func(payloads []any) any {
		m := payloads[0].(T)
		for _, p := range payloads[1:] {
			if v := p.(T); v > m {
				m = v
			}
		}
		return m
	})
	return res.(T)
}

// AllToAllv performs a personalized exchange: send[q] holds the (possibly
// empty) payload this rank ships to rank q (0 <= q < cm.Size()); the
// returned slice's q-th entry is the payload rank q shipped to this rank.
// This is the MPI_Alltoallv-equivalent the sparse all-to-all helper needs,
// specialized to whole-payload messages rather than raw byte buffers since
// Go generics let every caller (index lists, packed rows, struct batches)
// use the same primitive without manual (de)serialization.
func AllToAllv[T any](cm Comm, send [][]T) [][]T {
	if len(send) != cm.Size() {
		panic("comm: AllToAllv send slice must have Size() entries")
	}
	res := cm.c.h.rendezvous(cm.local, send, func(payloads []any) any {
		n := len(payloads)
		table := make([][][]T, n) // table[dst][src] = what src sent to dst
		for dst := 0; dst < n; dst++ {
			table[dst] = make([][]T, n)
			for src := 0; src < n; src++ {
				table[dst][src] = payloads[src].([][]T)[dst]
			}
		}
		return table
	})
	table := res.([][][]T)
	recv := make([][]T, 0, cm.Size())
	for _, part := range table[cm.local] {
		recv = append(recv, part)
	}
	return recv
}

// AllToAllvChecked behaves like AllToAllv but first exchanges just the
// per-peer send counts and verifies that, for every source, the count it is
// about to ship matches expectRecvCounts[src] — the caller's independently
// derived expectation of how much it should receive from that source. This
// is the debug mode the sparse all-to-all helper supports: a cheap
// counts-only round trip catches a mismatched index table before the real
// (possibly large) payload round ever moves, returning ErrCountMismatch
// instead of silently misrouting data.
func AllToAllvChecked[T any](cm Comm, send [][]T, expectRecvCounts []int) ([][]T, error) {
	countSend := make([][]int, len(send))
	for q, s := range send {
		countSend[q] = []int{len(s)}
	}
	recvCounts := AllToAllv(cm, countSend)
	for src, c := range recvCounts {
		if c[0] != expectRecvCounts[src] {
			return nil, ErrCountMismatch
		}
	}
	return AllToAllv(cm, send), nil
}
