// SPDX-License-Identifier: MIT

package zxopt

import "sync"

// nodeSlabPool recycles zx0Node slab backing arrays across calls to
// CompressZX0, the way the teacher's sliding-window dictionary pool recycles
// its ring buffers. This is purely a memory-reuse optimization: the slab's
// reference-count and free-list discipline inside zx0Arena is per-call state:
// allocate() sets each node's fields, and acquireNodeSlab additionally zeroes
// every slab it hands out.
var nodeSlabPool = sync.Pool{
	New: func() any {
		return make([]zx0Node, nodesPerSlab)
	},
}

// acquireNodeSlab returns a slab of nodesPerSlab zeroed zx0Node values.
func acquireNodeSlab() []zx0Node {
	slab := nodeSlabPool.Get().([]zx0Node)
	clear(slab)
	return slab
}

// releaseNodeSlab returns a slab to the pool. The chain/ghostNext pointers
// are cleared first so a pooled slab never keeps a prior call's decision DAG
// reachable through the pool.
func releaseNodeSlab(slab []zx0Node) {
	for i := range slab {
		slab[i].chain = nil
		slab[i].ghostNext = nil
	}
	nodeSlabPool.Put(slab) //nolint:staticcheck // SA6002: slice header, not a pointer; pooling the backing array is the point
}
