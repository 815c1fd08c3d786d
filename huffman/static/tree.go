// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package static

import (
	"container/heap"
	"sort"

	"github.com/joffrey-bion/jpack/bitio"
)

// node is either a leaf, carrying a code unit, or an internal node with
// exactly two children. Internal nodes only need their children to walk
// and serialise the tree; the weight used during construction is kept on
// the heap entry, not on the node itself.
type node struct {
	leaf        bool
	sym         uint16
	left, right *node
}

// buildTree constructs the Huffman tree for the given frequency table
// using a min-priority queue keyed by weight, breaking ties by insertion
// order. freq must not be empty. Symbols are fed to the queue in
// ascending order so that two runs over the same frequency table produce
// byte-identical serialised trees.
func buildTree(freq map[uint16]uint64) *node {
	syms := make([]uint16, 0, len(freq))
	for s := range freq {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	pq := make(priorityQueue, 0, len(syms))
	heap.Init(&pq)
	var order int
	for _, s := range syms {
		heap.Push(&pq, &queueEntry{n: &node{leaf: true, sym: s}, weight: freq[s], order: order})
		order++
	}

	if pq.Len() == 1 {
		return pq[0].n
	}
	for pq.Len() > 1 {
		zero := heap.Pop(&pq).(*queueEntry)
		one := heap.Pop(&pq).(*queueEntry)
		merged := &node{left: zero.n, right: one.n}
		heap.Push(&pq, &queueEntry{n: merged, weight: zero.weight + one.weight, order: order})
		order++
	}
	return pq[0].n
}

// queueEntry is the priority-queue element: a subtree plus the combined
// weight of its leaves and the order it was pushed in, used only to
// break weight ties deterministically (FIFO).
type queueEntry struct {
	n      *node
	weight uint64
	order  int
}

type priorityQueue []*queueEntry

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].order < pq[j].order
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*queueEntry))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// buildCodeTable walks root depth-first, assigning left=0, right=1 to
// build the prefix code for every leaf. For a single-leaf tree (root
// itself is a leaf), the mapped code is the empty bit string.
func buildCodeTable(root *node) map[uint16][]byte {
	codes := make(map[uint16][]byte)
	if root == nil {
		return codes
	}
	var walk func(n *node, prefix []byte)
	walk = func(n *node, prefix []byte) {
		if n.leaf {
			codes[n.sym] = append([]byte{}, prefix...)
			return
		}
		walk(n.left, append(append([]byte{}, prefix...), 0))
		walk(n.right, append(append([]byte{}, prefix...), 1))
	}
	walk(root, nil)
	return codes
}

// writeTree serialises root in pre-order: 1 then 16 bits for a leaf, 0
// then the serialisation of left and right for an internal node. A nil
// tree emits nothing.
func writeTree(w *bitio.Writer, root *node) {
	if root == nil {
		return
	}
	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf {
			w.WriteBit(1)
			w.WriteCodeUnit(n.sym)
			return
		}
		w.WriteBit(0)
		walk(n.left)
		walk(n.right)
	}
	walk(root)
}

// readTree is the inverse of writeTree.
func readTree(r *bitio.Reader) (*node, error) {
	bit, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	if bit == 1 {
		sym, err := r.ReadCodeUnit()
		if err != nil {
			return nil, err
		}
		return &node{leaf: true, sym: sym}, nil
	}
	left, err := readTree(r)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}

// decodeSymbol walks root bit-by-bit until it reaches a leaf. For a
// single-leaf tree, root is already a leaf and no bits are consumed.
func decodeSymbol(r *bitio.Reader, root *node) (uint16, error) {
	n := root
	for !n.leaf {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			return 0, ErrMalformed
		}
	}
	return n.sym, nil
}
