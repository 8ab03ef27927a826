// SPDX-License-Identifier: MIT

package zxopt

// zx0Node is a ZX0 decision node: "the optimal way to encode up to input
// position index, ending in an action characterized by offset" (spec §3).
// offset == 0 means the action is a literal run; offset > 0 means a match
// using that back-reference offset. chain is the predecessor action on this
// path; the chain relation forms a DAG rooted at a synthetic node with
// bits == -1.
type zx0Node struct {
	chain     *zx0Node
	ghostNext *zx0Node // free-list link; valid only while refs == 0
	bits      int
	index     int
	offset    int
	refs      int
}

const (
	nodesPerSlab = 10000
	maxSlabs     = 50000
)

// zx0Arena bulk-allocates zx0Node values in fixed-size slabs and recycles
// them by reference count through a free-list stack (ghostRoot), per spec
// §4.2's "Arena & recycler". It is scoped to a single optimize() call: no
// arena state is ever shared across invocations (DESIGN NOTES, "process-wide
// state").
type zx0Arena struct {
	ghostRoot  *zx0Node
	slabs      [][]zx0Node
	slabCursor int // nodes remaining unused in the most recently acquired slab
	reused     int // nodes served from the free list rather than a fresh slab slot
}

func newZX0Arena() *zx0Arena {
	return &zx0Arena{}
}

// allocate returns a fresh node with the given fields, reusing a free-listed
// node when one is available. chain's reference count is incremented; if
// reuse displaces a node's old chain link, that link's count is decremented
// and it is recycled in turn when it drops to zero.
func (a *zx0Arena) allocate(bits, index, offset int, chain *zx0Node) (*zx0Node, error) {
	var n *zx0Node
	if a.ghostRoot != nil {
		n = a.ghostRoot
		a.ghostRoot = n.ghostNext
		a.reused++
		if n.chain != nil {
			n.chain.refs--
			if n.chain.refs == 0 {
				n.chain.ghostNext = a.ghostRoot
				a.ghostRoot = n.chain
			}
		}
	} else {
		if a.slabCursor == 0 {
			if len(a.slabs) >= maxSlabs {
				return nil, ErrResourceExhausted
			}
			a.slabs = append(a.slabs, acquireNodeSlab())
			a.slabCursor = nodesPerSlab
		}
		a.slabCursor--
		n = &a.slabs[len(a.slabs)-1][a.slabCursor]
	}

	n.bits = bits
	n.index = index
	n.offset = offset
	if chain != nil {
		chain.refs++
	}
	n.chain = chain
	n.refs = 0
	return n, nil
}

// assign points *slot at next, incrementing next's reference count. If *slot
// previously held a node, that node's count is decremented and, if it drops
// to zero, the node is prepended to the free list.
func (a *zx0Arena) assign(slot **zx0Node, next *zx0Node) {
	next.refs++
	if *slot != nil {
		(*slot).refs--
		if (*slot).refs == 0 {
			(*slot).ghostNext = a.ghostRoot
			a.ghostRoot = *slot
		}
	}
	*slot = next
}

// slabsAllocated reports how many slabs were used this call, for telemetry.
func (a *zx0Arena) slabsAllocated() int {
	return len(a.slabs)
}

// nodesReused reports how many allocate calls this call served from the
// free list instead of a fresh slab slot, for telemetry.
func (a *zx0Arena) nodesReused() int {
	return a.reused
}

// release returns every slab this arena holds to the package-level slab
// pool so a later call can reuse the backing storage.
func (a *zx0Arena) release() {
	for _, slab := range a.slabs {
		releaseNodeSlab(slab)
	}
	a.slabs = nil
	a.ghostRoot = nil
}
