// Copyright 2025, Joffrey Bion. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the block-level Burrows-Wheeler transform over
// the 16-bit code-unit alphabet, and its inverse.
//
// The forward transform represents a rotation by its integer offset into
// the source block and sorts those offsets lexicographically, following
// the same approach as a suffix-array-free rotation sort; see
// createRotationSort. The inverse builds the statistics tables described
// by the LF-mapping (prevMatch/nbLessThan) and walks them back to the
// source block.
package bwt

import "sort"

// Forward computes the Burrows-Wheeler transform of a non-empty block S.
// It returns the last column L of the sorted rotation matrix and the
// primary index p, the row at which the original rotation (offset 0)
// ended up after sorting.
//
// If s is empty, Forward returns an empty block and primary index 0;
// the pipeline never produces empty blocks, so this case only matters to
// callers that invoke Forward directly.
func Forward(s []uint16) (l []uint16, p int) {
	n := len(s)
	if n == 0 {
		return []uint16{}, 0
	}

	offsets := createRotationSort(s)
	sort.Sort(offsets)

	l = make([]uint16, n)
	for i, off := range offsets.perm {
		if off == 0 {
			p = i
		}
		l[i] = s[(off+n-1)%n]
	}
	return l, p
}

// rotationSort sorts rotation offsets of base lexicographically by the
// content of the rotation they represent.
type rotationSort struct {
	base []uint16
	perm []int
}

func createRotationSort(base []uint16) *rotationSort {
	perm := make([]int, len(base))
	for i := range perm {
		perm[i] = i
	}
	return &rotationSort{base: base, perm: perm}
}

func (s *rotationSort) Len() int      { return len(s.perm) }
func (s *rotationSort) Swap(i, j int) { s.perm[i], s.perm[j] = s.perm[j], s.perm[i] }

func (s *rotationSort) Less(i, j int) bool {
	n := len(s.base)
	oi, oj := s.perm[i], s.perm[j]
	for k := 0; k < n; k++ {
		bi, bj := s.base[(oi+k)%n], s.base[(oj+k)%n]
		if bi != bj {
			return bi < bj
		}
	}
	return s.perm[i] < s.perm[j]
}

// Inverse reconstructs the original block from its last column l and
// primary index p, using the LF-mapping: at each step it emits l[pos]
// and advances pos to the position of the preceding character in the
// original block, via the rank-within-character (prevMatch) and
// characters-strictly-smaller (nbLessThan) statistics tables. The raw
// walk yields the source block in reverse; Inverse reverses it back.
func Inverse(l []uint16, p int) []uint16 {
	n := len(l)
	if n == 0 {
		return []uint16{}
	}

	var counts [1 << 16]int
	for _, c := range l {
		counts[c]++
	}
	var nbLessThan [1 << 16]int
	sum := 0
	for c, cnt := range counts {
		nbLessThan[c] = sum
		sum += cnt
	}

	prevMatch := make([]int, n)
	var seen [1 << 16]int
	for i, c := range l {
		prevMatch[i] = seen[c]
		seen[c]++
	}

	out := make([]uint16, n)
	pos := p
	for k := 0; k < n; k++ {
		c := l[pos]
		out[k] = c
		pos = nbLessThan[c] + prevMatch[pos]
	}

	// out holds the source block in reverse; reverse it in place.
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
